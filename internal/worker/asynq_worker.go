package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/scentlab/scentlab/internal/logger"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/provider"
	"github.com/scentlab/scentlab/internal/queue"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer async task consumer
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers the task handlers
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
	mux.HandleFunc(queue.TaskOrderTimeoutCancel, c.handleOrderTimeoutCancel)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	var user *models.User
	if order.UserID != 0 {
		user, err = c.UserRepo.GetByID(order.UserID)
		if err != nil {
			logger.Warnw("worker_order_confirmation_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
			return err
		}
	}
	receiverEmail, locale := resolveConfirmationReceiver(order, user)
	if receiverEmail == "" {
		logger.Debugw("worker_order_confirmation_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil || !c.EmailService.Enabled() {
		logger.Debugw("worker_order_confirmation_email_skip_disabled", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}

	if err := c.EmailService.SendOrderConfirmation(receiverEmail, order.OrderNo, order.TotalAmount, locale); err != nil {
		logger.Warnw("worker_order_confirmation_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"error", err,
		)
		return err
	}
	return nil
}

// resolveConfirmationReceiver picks the email address and locale for the
// confirmation mail. The address typed at checkout wins over the account email.
func resolveConfirmationReceiver(order *models.Order, user *models.User) (string, string) {
	if order == nil {
		return "", ""
	}
	receiverEmail := strings.TrimSpace(order.CustomerEmail)
	locale := ""
	if user != nil {
		if receiverEmail == "" {
			receiverEmail = strings.TrimSpace(user.Email)
		}
		locale = strings.TrimSpace(user.Locale)
	}
	return receiverEmail, locale
}

func (c *Consumer) handleOrderTimeoutCancel(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_timeout_cancel_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderTimeoutCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_timeout_cancel_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_timeout_cancel_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.OrderService == nil {
		logger.Warnw("worker_order_timeout_cancel_skip_order_service_nil", "order_id", payload.OrderID)
		return nil
	}

	if err := c.OrderService.CancelIfExpired(payload.OrderID); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			logger.Debugw("worker_order_timeout_cancel_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		}
		logger.Warnw("worker_order_timeout_cancel_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}
