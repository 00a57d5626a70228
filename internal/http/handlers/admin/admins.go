package admin

import (
	"context"
	"strconv"
	"time"

	"github.com/scentlab/scentlab/internal/cache"
	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"

	"github.com/gin-gonic/gin"
)

// CreateAdminRequest create a back-office account
type CreateAdminRequest struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Roles    []string `json:"roles"`
}

// UpdateAdminRequest reset an account's password or roles. A password reset
// revokes the account's outstanding sessions.
type UpdateAdminRequest struct {
	Password string    `json:"password"`
	Roles    *[]string `json:"roles"`
}

// ListAdmins returns back-office accounts with their roles
func (h *Handler) ListAdmins(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	admins, total, err := h.AdminRepo.List(repository.AdminListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	items := make([]gin.H, 0, len(admins))
	for i := range admins {
		roles, err := h.AuthzService.GetAdminRoles(admins[i].ID)
		if err != nil {
			respondError(c, response.CodeInternal, "error.fetch_failed", err)
			return
		}
		items = append(items, gin.H{
			"admin": admins[i],
			"roles": roles,
		})
	}

	response.SuccessWithPage(c, items, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// CreateAdmin creates a back-office account and assigns its roles
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	existing, err := h.AdminRepo.GetByUsername(req.Username)
	if err != nil {
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}
	if existing != nil {
		respondError(c, response.CodeBadRequest, "error.username_exists", nil)
		return
	}

	if err := h.AuthService.ValidatePassword(req.Password); err != nil {
		respondWeakPasswordError(c, err)
		return
	}
	hash, err := h.AuthService.HashPassword(req.Password)
	if err != nil {
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}

	admin := &models.Admin{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := h.AdminRepo.Create(admin); err != nil {
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}

	if len(req.Roles) > 0 {
		if err := h.AuthzService.SetAdminRoles(admin.ID, req.Roles); err != nil {
			respondError(c, response.CodeInternal, "error.save_failed", err)
			return
		}
	}

	response.Success(c, admin)
}

// UpdateAdmin resets an account's password or replaces its roles
func (h *Handler) UpdateAdmin(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
		return
	}

	if req.Password != "" {
		if err := h.AuthService.ValidatePassword(req.Password); err != nil {
			respondWeakPasswordError(c, err)
			return
		}
		hash, err := h.AuthService.HashPassword(req.Password)
		if err != nil {
			respondError(c, response.CodeInternal, "error.save_failed", err)
			return
		}
		now := time.Now()
		admin.PasswordHash = hash
		admin.TokenVersion++
		admin.TokenInvalidBefore = &now
		if err := h.AdminRepo.Update(admin); err != nil {
			respondError(c, response.CodeInternal, "error.save_failed", err)
			return
		}
		_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	}

	if req.Roles != nil {
		if err := h.AuthzService.SetAdminRoles(id, *req.Roles); err != nil {
			respondError(c, response.CodeBadRequest, "error.invalid_request", err)
			return
		}
	}

	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, gin.H{
		"admin": admin,
		"roles": roles,
	})
}

// DeleteAdmin removes a back-office account and its role assignments
func (h *Handler) DeleteAdmin(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if id == adminID {
		// an admin cannot delete their own account
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}

	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
		return
	}

	if err := h.AuthzService.SetAdminRoles(id, nil); err != nil {
		respondError(c, response.CodeInternal, "error.delete_failed", err)
		return
	}
	if err := h.AdminRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "error.delete_failed", err)
		return
	}
	_ = cache.DelAdminAuthState(context.Background(), id)

	response.Success(c, nil)
}
