package public

import (
	"strconv"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// EstimateShippingRequest shipping quote request for the current cart
type EstimateShippingRequest struct {
	ShippingMethod string                  `json:"shipping_method" binding:"required"`
	Address        service.CheckoutAddress `json:"address" binding:"required"`
}

// CheckoutRequest places an order from the current cart. Either a saved
// address id or an inline address must be provided.
type CheckoutRequest struct {
	AddressID      uint                     `json:"address_id"`
	Address        *service.CheckoutAddress `json:"address"`
	ShippingMethod string                   `json:"shipping_method" binding:"required"`
	PaymentMethod  string                   `json:"payment_method" binding:"required"`
}

// EstimateShipping quotes the shipping fee and the delivery window for the cart
func (h *Handler) EstimateShipping(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req EstimateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	quote, err := h.OrderService.EstimateShipping(userID, req.ShippingMethod, req.Address)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.shipping_estimate_failed")
		return
	}
	response.Success(c, quote)
}

// PreviewCheckout returns the order summary plus the shipping quote for the
// cart, the figures the checkout page shows before the user submits
func (h *Handler) PreviewCheckout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req EstimateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	preview, err := h.OrderService.PreviewCheckout(userID, req.ShippingMethod, req.Address)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.shipping_estimate_failed")
		return
	}
	response.Success(c, preview)
}

// Checkout turns the cart into a pending order
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	order, err := h.OrderService.Checkout(service.CheckoutInput{
		UserID:         userID,
		AddressID:      req.AddressID,
		Address:        req.Address,
		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
		ClientIP:       c.ClientIP(),
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.order_create_failed")
		return
	}
	response.Success(c, order)
}

// ListMyOrders returns the signed-in user's orders, newest first
func (h *Handler) ListMyOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByUser(userID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetMyOrder returns one of the signed-in user's orders by order number
func (h *Handler) GetMyOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetForUser(c.Param("order_no"), userID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, order)
}

// CancelMyOrder cancels a pending order
func (h *Handler) CancelMyOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.CancelByUser(c.Param("order_no"), userID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_cancel_failed")
		return
	}
	response.Success(c, order)
}
