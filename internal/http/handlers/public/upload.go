package public

import (
	"errors"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadDesignImage stores a user-provided logo or photo for a design
func (h *Handler) UploadDesignImage(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	path, err := h.UploadService.SaveFile(file, "design")
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, response.CodeBadRequest, "error.upload_too_large", nil)
		case errors.Is(err, service.ErrUploadTypeInvalid):
			respondError(c, response.CodeBadRequest, "error.upload_type_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.upload_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"url": path})
}
