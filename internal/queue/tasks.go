package queue

import (
	"encoding/json"

	"github.com/scentlab/scentlab/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmationEmail order confirmation mail task
	TaskOrderConfirmationEmail = constants.TaskOrderConfirmationEmail
	// TaskOrderTimeoutCancel timeout cancel task
	TaskOrderTimeoutCancel = constants.TaskOrderTimeoutCancel
)

// OrderConfirmationEmailPayload order confirmation mail task payload
type OrderConfirmationEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// OrderTimeoutCancelPayload timeout cancel task payload
type OrderTimeoutCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderConfirmationEmailTask creates the order confirmation mail task
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmationEmail, body), nil
}

// NewOrderTimeoutCancelTask creates the timeout cancel task
func NewOrderTimeoutCancelTask(payload OrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderTimeoutCancel, body), nil
}
