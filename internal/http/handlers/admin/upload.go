package admin

import (
	"errors"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// Upload stores an image for products, categories, or posts
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	scene := c.DefaultPostForm("scene", "common")
	path, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, response.CodeBadRequest, "error.upload_too_large", nil)
		case errors.Is(err, service.ErrUploadTypeInvalid):
			respondError(c, response.CodeBadRequest, "error.upload_type_invalid", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.upload_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"url": path})
}
