package public

import (
	"github.com/scentlab/scentlab/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha issues a new image challenge
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if !h.CaptchaService.Enabled() {
		respondError(c, response.CodeBadRequest, "error.captcha_unavailable", nil)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "error.captcha_generate_failed", err)
		return
	}
	response.Success(c, challenge)
}
