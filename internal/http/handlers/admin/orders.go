package admin

import (
	"strconv"
	"time"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/repository"

	"github.com/gin-gonic/gin"
)

// SetOrderStatusRequest move an order to a new status
type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseTimeQuery(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return &t
	}
	return nil
}

// ListOrders returns orders filtered by status, order number, phone, user, and date range
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	orders, total, err := h.OrderService.AdminList(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		UserID:      uint(userID),
		Status:      c.Query("status"),
		OrderNo:     c.Query("order_no"),
		Phone:       c.Query("phone"),
		CreatedFrom: parseTimeQuery(c, "created_from"),
		CreatedTo:   parseTimeQuery(c, "created_to"),
	})
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

// GetOrder returns one order with its lines by order number
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderService.AdminGet(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, adminOrderErrorRules, response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, order)
}

// SetOrderStatus moves an order along the fulfillment flow
func (h *Handler) SetOrderStatus(c *gin.Context) {
	var req SetOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	order, err := h.OrderService.AdminSetStatus(c.Param("id"), req.Status)
	if err != nil {
		respondWithMappedError(c, err, adminOrderErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, order)
}
