package admin

import (
	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveColorRequest create or update a color option
type SaveColorRequest struct {
	Name      string `json:"name" binding:"required"`
	HexCode   string `json:"hex_code"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// SaveSizeRequest create or update a size option
type SaveSizeRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// SaveScentRequest create or update a scent option
type SaveScentRequest struct {
	Name       string `json:"name" binding:"required"`
	NoteFamily string `json:"note_family"`
	SortOrder  int    `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

// ListColors returns all color options, inactive included
func (h *Handler) ListColors(c *gin.Context) {
	colors, err := h.CatalogService.ListColors(false)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, colors)
}

// CreateColor creates a color option
func (h *Handler) CreateColor(c *gin.Context) {
	var req SaveColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	color, err := h.CatalogService.CreateColor(service.SaveColorInput{
		Name:      req.Name,
		HexCode:   req.HexCode,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, color)
}

// UpdateColor updates a color option
func (h *Handler) UpdateColor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SaveColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	color, err := h.CatalogService.UpdateColor(id, service.SaveColorInput{
		Name:      req.Name,
		HexCode:   req.HexCode,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, color)
}

// DeleteColor removes a color option
func (h *Handler) DeleteColor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.CatalogService.DeleteColor(id); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}

// ListSizes returns all size options, inactive included
func (h *Handler) ListSizes(c *gin.Context) {
	sizes, err := h.CatalogService.ListSizes(false)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, sizes)
}

// CreateSize creates a size option
func (h *Handler) CreateSize(c *gin.Context) {
	var req SaveSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	size, err := h.CatalogService.CreateSize(service.SaveSizeInput{
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, size)
}

// UpdateSize updates a size option
func (h *Handler) UpdateSize(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SaveSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	size, err := h.CatalogService.UpdateSize(id, service.SaveSizeInput{
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, size)
}

// DeleteSize removes a size option
func (h *Handler) DeleteSize(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.CatalogService.DeleteSize(id); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}

// ListScents returns all scent options, inactive included
func (h *Handler) ListScents(c *gin.Context) {
	scents, err := h.CatalogService.ListScents(false)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, scents)
}

// CreateScent creates a scent option
func (h *Handler) CreateScent(c *gin.Context) {
	var req SaveScentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	scent, err := h.CatalogService.CreateScent(service.SaveScentInput{
		Name:       req.Name,
		NoteFamily: req.NoteFamily,
		SortOrder:  req.SortOrder,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, scent)
}

// UpdateScent updates a scent option
func (h *Handler) UpdateScent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SaveScentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	scent, err := h.CatalogService.UpdateScent(id, service.SaveScentInput{
		Name:       req.Name,
		NoteFamily: req.NoteFamily,
		SortOrder:  req.SortOrder,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, scent)
}

// DeleteScent removes a scent option
func (h *Handler) DeleteScent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.CatalogService.DeleteScent(id); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}
