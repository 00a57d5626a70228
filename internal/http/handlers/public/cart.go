package public

import (
	"strconv"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest add a catalog product to the cart
type AddCartItemRequest struct {
	ProductID      uint     `json:"product_id" binding:"required"`
	SelectedColors []string `json:"selected_colors"`
	SelectedSize   string   `json:"selected_size"`
	Quantity       int      `json:"quantity"`
}

// AddToCartResponse cart line plus the drawer-open signal. Only the add
// paths set open_cart; quantity updates and removals leave the drawer alone.
type AddToCartResponse struct {
	Item     *models.CartItem `json:"item"`
	OpenCart bool             `json:"open_cart"`
}

// UpdateCartQuantityRequest adjust a cart line by a signed delta
type UpdateCartQuantityRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Delta     int  `json:"delta" binding:"required"`
}

// GetCart returns the cart lines with the aggregated totals
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	view, err := h.CartService.List(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, view)
}

// AddCartItem adds a catalog product to the cart, merging same-variant lines
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	item, err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:         userID,
		ProductID:      req.ProductID,
		SelectedColors: req.SelectedColors,
		SelectedSize:   req.SelectedSize,
		Quantity:       req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, AddToCartResponse{Item: item, OpenCart: true})
}

// UpdateCartQuantity changes a line quantity by delta; the quantity floors at one
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	item, err := h.CartService.UpdateQuantity(userID, req.ProductID, req.Delta)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, item)
}

// RemoveCartItem deletes one cart line
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.CartService.RemoveItem(userID, uint(productID)); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}

// ClearCart empties the cart
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(userID); err != nil {
		respondError(c, response.CodeInternal, "error.delete_failed", err)
		return
	}
	response.Success(c, nil)
}
