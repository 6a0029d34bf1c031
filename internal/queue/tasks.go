package queue

import (
	"encoding/json"

	"github.com/gauravjat135/galaxy-medical-store/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderAutoCancel cancels a pending order after the configured delay.
	TaskOrderAutoCancel = constants.TaskOrderAutoCancel
	// TaskInventoryLowStock notifies staff that a product ran low.
	TaskInventoryLowStock = constants.TaskInventoryLowStock
)

// OrderAutoCancelPayload identifies the order to expire.
type OrderAutoCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// LowStockAlertPayload identifies the product that ran low.
type LowStockAlertPayload struct {
	ProductID uint `json:"product_id"`
	Remaining int  `json:"remaining"`
}

// NewOrderAutoCancelTask creates the auto-cancel task.
func NewOrderAutoCancelTask(payload OrderAutoCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderAutoCancel, body), nil
}

// NewLowStockAlertTask creates the low-stock alert task.
func NewLowStockAlertTask(payload LowStockAlertPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInventoryLowStock, body), nil
}
