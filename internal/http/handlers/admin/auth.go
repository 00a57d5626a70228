package admin

import (
	"errors"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest back-office sign-in request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest back-office password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Login signs an admin in and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginFailed) {
			respondError(c, response.CodeUnauthorized, "error.login_failed", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal_error", err)
		return
	}

	response.Success(c, gin.H{
		"admin":      admin,
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

// Me returns the signed-in admin with the assigned roles
func (h *Handler) Me(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	admin, err := h.AdminRepo.GetByID(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	response.Success(c, gin.H{
		"admin": admin,
		"roles": roles,
	})
}

// ChangePassword changes the signed-in admin's password
func (h *Handler) ChangePassword(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(adminID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
		case errors.Is(err, service.ErrOldPasswordIncorrect):
			respondError(c, response.CodeBadRequest, "error.old_password_incorrect", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondWeakPasswordError(c, err)
		default:
			respondError(c, response.CodeInternal, "error.save_failed", err)
		}
		return
	}
	response.Success(c, nil)
}
