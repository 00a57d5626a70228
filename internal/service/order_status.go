package service

import (
	"time"

	"github.com/scentlab/scentlab/internal/constants"
	"github.com/scentlab/scentlab/internal/logger"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/repository"
)

// allowed forward transitions of the order status machine
var orderTransitions = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusConfirmed, constants.OrderStatusCanceled},
	constants.OrderStatusConfirmed: {constants.OrderStatusShipping, constants.OrderStatusCanceled},
	constants.OrderStatusShipping:  {constants.OrderStatusDelivered},
	constants.OrderStatusDelivered: {constants.OrderStatusCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ListByUser lists the orders of a user
func (s *OrderService) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetForUser fetches an order owned by a user
func (s *OrderService) GetForUser(orderNo string, userID uint) (*models.Order, error) {
	if orderNo == "" || userID == 0 {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByOrderNoAndUser(orderNo, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CancelByUser cancels a pending order on behalf of its owner
func (s *OrderService) CancelByUser(orderNo string, userID uint) (*models.Order, error) {
	order, err := s.GetForUser(orderNo, userID)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrOrderNotCancelable
	}

	now := s.now()
	updates := map[string]interface{}{
		"status":      constants.OrderStatusCanceled,
		"canceled_at": now,
		"updated_at":  now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, updates); err != nil {
		return nil, err
	}
	order.Status = constants.OrderStatusCanceled
	order.CanceledAt = &now
	return order, nil
}

// AdminList lists orders for the back office
func (s *OrderService) AdminList(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// AdminGet fetches an order by order number
func (s *OrderService) AdminGet(orderNo string) (*models.Order, error) {
	if orderNo == "" {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// AdminSetStatus applies a status transition from the back office
func (s *OrderService) AdminSetStatus(orderNo, status string) (*models.Order, error) {
	order, err := s.AdminGet(orderNo)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(order.Status, status) {
		return nil, ErrInvalidOrderStatus
	}

	now := s.now()
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": now,
	}
	switch status {
	case constants.OrderStatusConfirmed:
		updates["paid_at"] = now
		order.PaidAt = &now
	case constants.OrderStatusCanceled:
		updates["canceled_at"] = now
		order.CanceledAt = &now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, updates); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// CancelIfExpired cancels an order whose confirmation window has elapsed.
// A no-op when the order has already moved past pending.
func (s *OrderService) CancelIfExpired(orderID uint) error {
	if orderID == 0 {
		return ErrInvalidInput
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil || order.Status != constants.OrderStatusPending {
		return nil
	}
	if order.ExpiresAt == nil || order.ExpiresAt.After(s.now()) {
		return nil
	}

	now := s.now()
	updates := map[string]interface{}{
		"status":      constants.OrderStatusCanceled,
		"canceled_at": now,
		"updated_at":  now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, updates); err != nil {
		return err
	}
	logger.Infow("order_timeout_canceled", "order_no", order.OrderNo)
	return nil
}

// SweepExpiredPending cancels every pending order past its deadline.
// A safety net for tasks lost while the queue was down.
func (s *OrderService) SweepExpiredPending(limit int) (int, error) {
	orders, err := s.orderRepo.ListExpiredPending(s.now(), limit)
	if err != nil {
		return 0, err
	}
	canceled := 0
	for _, order := range orders {
		if err := s.CancelIfExpired(order.ID); err != nil {
			logger.Warnw("sweep_expired_order_failed", "order_no", order.OrderNo, "error", err)
			continue
		}
		canceled++
	}
	return canceled, nil
}

// ConfirmWindow returns the remaining confirmation window of an order
func (s *OrderService) ConfirmWindow(order *models.Order) time.Duration {
	if order == nil || order.ExpiresAt == nil {
		return 0
	}
	remaining := order.ExpiresAt.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}
