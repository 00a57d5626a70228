package admin

import (
	"errors"
	"strconv"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/repository"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// SetUserStatusRequest enable or disable a storefront account
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListUsers returns storefront accounts filtered by keyword, status, and date range
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	users, total, err := h.UserRepo.List(repository.UserListFilter{
		Page:        page,
		PageSize:    pageSize,
		Keyword:     c.Query("keyword"),
		Status:      c.Query("status"),
		CreatedFrom: parseTimeQuery(c, "created_from"),
		CreatedTo:   parseTimeQuery(c, "created_to"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, users, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetUser returns one storefront account
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := h.UserRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.not_found", nil)
		return
	}
	response.Success(c, user)
}

// SetUserStatus enables or disables a storefront account. Disabling also
// revokes the account's outstanding sessions.
func (h *Handler) SetUserStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	user, err := h.UserAuthService.SetStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		case errors.Is(err, service.ErrLoginFailed):
			respondError(c, response.CodeNotFound, "error.not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.save_failed", err)
		}
		return
	}
	response.Success(c, user)
}
