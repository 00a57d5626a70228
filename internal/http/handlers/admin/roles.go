package admin

import (
	"github.com/scentlab/scentlab/internal/authz"
	"github.com/scentlab/scentlab/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateRoleRequest create an empty role
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required"`
}

// RolePolicyRequest grant or revoke one policy on a role
type RolePolicyRequest struct {
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

func builtinRoleNames() map[string]bool {
	names := make(map[string]bool)
	for _, seed := range authz.BuiltinRoleSeeds() {
		if normalized, err := authz.NormalizeRole(seed.Role); err == nil {
			names[normalized] = true
		}
	}
	return names
}

// ListRoles returns all roles with their policies
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	builtin := builtinRoleNames()
	items := make([]gin.H, 0, len(roles))
	for _, role := range roles {
		policies, err := h.AuthzService.GetRolePolicies(role)
		if err != nil {
			respondError(c, response.CodeInternal, "error.fetch_failed", err)
			return
		}
		items = append(items, gin.H{
			"name":     role,
			"builtin":  builtin[role],
			"policies": policies,
		})
	}
	response.Success(c, items)
}

// CreateRole creates an empty custom role
func (h *Handler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	role, err := h.AuthzService.EnsureRole(req.Name)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	response.Success(c, gin.H{"name": role})
}

// DeleteRole removes a custom role and its assignments. Builtin roles are protected.
func (h *Handler) DeleteRole(c *gin.Context) {
	name := c.Param("name")
	normalized, err := authz.NormalizeRole(name)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if builtinRoleNames()[normalized] {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}

	if err := h.AuthzService.DeleteRole(name); err != nil {
		respondError(c, response.CodeInternal, "error.delete_failed", err)
		return
	}
	response.Success(c, nil)
}

// GetRolePolicies returns one role's policies
func (h *Handler) GetRolePolicies(c *gin.Context) {
	policies, err := h.AuthzService.GetRolePolicies(c.Param("name"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.role_not_found", err)
		return
	}
	response.Success(c, policies)
}

// GrantRolePolicy grants one policy to a role
func (h *Handler) GrantRolePolicy(c *gin.Context) {
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.AuthzService.GrantRolePolicy(c.Param("name"), req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	response.Success(c, nil)
}

// RevokeRolePolicy revokes one policy from a role
func (h *Handler) RevokeRolePolicy(c *gin.Context) {
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.AuthzService.RevokeRolePolicy(c.Param("name"), req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	response.Success(c, nil)
}
