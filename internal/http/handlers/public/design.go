package public

import (
	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// DesignRequest a design-your-own configuration
type DesignRequest struct {
	BaseProductID uint   `json:"base_product_id" binding:"required"`
	SelectedColor string `json:"selected_color"`
	ScentIDs      []uint `json:"scent_ids"`
	Title         string `json:"title"`
	LogoSize      string `json:"logo_size"`
	UploadedImage string `json:"uploaded_image"`
	Quantity      int    `json:"quantity"`
}

func (r DesignRequest) toInput() service.DesignInput {
	return service.DesignInput{
		BaseProductID: r.BaseProductID,
		SelectedColor: r.SelectedColor,
		ScentIDs:      r.ScentIDs,
		Title:         r.Title,
		LogoSize:      r.LogoSize,
		UploadedImage: r.UploadedImage,
		Quantity:      r.Quantity,
	}
}

// QuoteDesign prices a design without touching the cart
func (h *Handler) QuoteDesign(c *gin.Context) {
	var req DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	quote, err := h.DesignService.Quote(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, designErrorRules, response.CodeInternal, "error.internal_error")
		return
	}
	response.Success(c, quote)
}

// AddDesignToCart validates a design and puts it in the cart as a custom line
func (h *Handler) AddDesignToCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	item, err := h.DesignService.AddToCart(userID, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, designErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, AddToCartResponse{Item: item, OpenCart: true})
}
