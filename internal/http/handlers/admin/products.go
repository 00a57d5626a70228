package admin

import (
	"strconv"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SaveProductRequest create or update a product
type SaveProductRequest struct {
	CategoryID    uint            `json:"category_id" binding:"required"`
	Slug          string          `json:"slug" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Images        []string        `json:"images"`
	Thumbnail     string          `json:"thumbnail"`
	UnitWeightKg  float64         `json:"unit_weight_kg"`
	IsCustomBase  *bool           `json:"is_custom_base"`
	IsActive      *bool           `json:"is_active"`
	SortOrder     int             `json:"sort_order"`
	ColorIDs      []uint          `json:"color_ids"`
	SizeIDs       []uint          `json:"size_ids"`
}

// SetActiveRequest toggle visibility
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (r SaveProductRequest) toInput() service.SaveProductInput {
	return service.SaveProductInput{
		CategoryID:    r.CategoryID,
		Slug:          r.Slug,
		Name:          r.Name,
		Description:   r.Description,
		OriginalPrice: r.OriginalPrice,
		SalePrice:     r.SalePrice,
		Images:        r.Images,
		Thumbnail:     r.Thumbnail,
		UnitWeightKg:  r.UnitWeightKg,
		IsCustomBase:  r.IsCustomBase,
		IsActive:      r.IsActive,
		SortOrder:     r.SortOrder,
		ColorIDs:      r.ColorIDs,
		SizeIDs:       r.SizeIDs,
	}
}

// ListProducts returns products for the back office, drafts included
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.ProductService.ListAdmin(c.Query("category_id"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetProduct returns one product by id
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	product, err := h.ProductService.GetAdminByID(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, product)
}

// CreateProduct creates a product
func (h *Handler) CreateProduct(c *gin.Context) {
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, product)
}

// UpdateProduct updates a product
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, product)
}

// SetProductActive toggles a product on or off the storefront
func (h *Handler) SetProductActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	product, err := h.ProductService.SetActive(id, *req.IsActive)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}
