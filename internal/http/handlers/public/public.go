package public

import (
	"errors"
	"strconv"

	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/i18n"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// GetConfig returns the storefront bootstrap config
func (h *Handler) GetConfig(c *gin.Context) {
	response.Success(c, gin.H{
		"languages":        []string{i18n.LocaleVI, i18n.LocaleEN},
		"default_language": i18n.DefaultLocale,
		"support_contact":  h.SettingService.SupportContact(),
		"shipping_methods": []string{constants.ShippingMethodStandard, constants.ShippingMethodExpress},
		"payment_methods":  []string{constants.PaymentMethodCOD, constants.PaymentMethodBankTransfer},
		"captcha": gin.H{
			"enabled": h.CaptchaService.Enabled(),
			"scenes": gin.H{
				"login":    h.CaptchaService.RequiredForScene(constants.CaptchaSceneLogin),
				"register": h.CaptchaService.RequiredForScene(constants.CaptchaSceneRegister),
			},
		},
	})
}

// GetCategories returns all categories for the storefront navigation
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetProducts returns active products, filterable by category, keyword, and custom-base flag
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var customBase *bool
	if raw := c.Query("custom_base"); raw != "" {
		flag := raw == "true" || raw == "1"
		customBase = &flag
	}

	products, total, err := h.ProductService.ListPublic(c.Query("category_id"), c.Query("search"), customBase, page, pageSize)
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

// GetProductBySlug returns one active product detail
func (h *Handler) GetProductBySlug(c *gin.Context) {
	product, err := h.ProductService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// GetPosts returns published posts, filterable by type
func (h *Handler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	posts, total, err := h.PostService.ListPublic(c.Query("type"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, posts, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetPostBySlug returns one published post
func (h *Handler) GetPostBySlug(c *gin.Context) {
	post, err := h.PostService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, post)
}

// GetDesignOptions returns the option sets for the design-your-own page
func (h *Handler) GetDesignOptions(c *gin.Context) {
	colors, err := h.CatalogService.ListColors(true)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	sizes, err := h.CatalogService.ListSizes(true)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	scents, err := h.CatalogService.ListScents(true)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	logoSizes := []gin.H{
		{"code": constants.LogoSizeSmall, "label": i18n.T(locale, "label.logo_size_s")},
		{"code": constants.LogoSizeMedium, "label": i18n.T(locale, "label.logo_size_m")},
		{"code": constants.LogoSizeLarge, "label": i18n.T(locale, "label.logo_size_l")},
	}

	response.Success(c, gin.H{
		"colors":     colors,
		"sizes":      sizes,
		"scents":     scents,
		"logo_sizes": logoSizes,
	})
}
