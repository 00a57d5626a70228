package public

import (
	"errors"

	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest storefront sign-up request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// LoginRequest storefront sign-in request
type LoginRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	RememberMe  bool   `json:"remember_me"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// UpdateProfileRequest profile edit request
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Locale      string `json:"locale"`
}

// ChangePasswordRequest password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Register creates a user account and signs it in
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.CaptchaService.Verify(constants.CaptchaSceneRegister, req.CaptchaID, req.CaptchaCode); err != nil {
		respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
		return
	}

	user, err := h.UserAuthService.Register(service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, "error.email_exists", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondWeakPasswordError(c, err)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.register_failed", err)
		}
		return
	}

	token, expiresAt, err := h.UserAuthService.GenerateUserJWT(user, false)
	if err != nil {
		respondError(c, response.CodeInternal, "error.register_failed", err)
		return
	}

	response.Success(c, gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

// Login signs a user in and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.CaptchaService.Verify(constants.CaptchaSceneLogin, req.CaptchaID, req.CaptchaCode); err != nil {
		respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password, req.RememberMe)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserDisabled):
			respondError(c, response.CodeUnauthorized, "error.user_disabled", nil)
		case errors.Is(err, service.ErrLoginFailed):
			respondError(c, response.CodeUnauthorized, "error.login_failed", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal_error", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

// GetCurrentUser returns the signed-in user's profile
func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrLoginFailed) {
			respondError(c, response.CodeNotFound, "error.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// UpdateProfile updates display name, phone, and locale
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	user, err := h.UserAuthService.UpdateProfile(userID, req.DisplayName, req.Phone, req.Locale)
	if err != nil {
		if errors.Is(err, service.ErrLoginFailed) {
			respondError(c, response.CodeNotFound, "error.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// ChangePassword changes the signed-in user's password
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.UserAuthService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
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
