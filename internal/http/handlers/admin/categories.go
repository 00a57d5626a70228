package admin

import (
	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveCategoryRequest create or update a category
type SaveCategoryRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func (r SaveCategoryRequest) toInput() service.SaveCategoryInput {
	return service.SaveCategoryInput{
		Slug:      r.Slug,
		Name:      r.Name,
		Icon:      r.Icon,
		SortOrder: r.SortOrder,
	}
}

// ListCategories returns all categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory creates a category
func (h *Handler) CreateCategory(c *gin.Context) {
	var req SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	category, err := h.CategoryService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, category)
}

// UpdateCategory updates a category
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	category, err := h.CategoryService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes an empty category
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.CategoryService.Delete(id); err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}
