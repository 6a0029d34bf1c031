package worker

import (
	"context"
	"encoding/json"

	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/provider"
	"github.com/gauravjat135/galaxy-medical-store/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks with the same services the HTTP layer uses.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderAutoCancel, c.handleOrderAutoCancel)
	mux.HandleFunc(queue.TaskInventoryLowStock, c.handleLowStockAlert)
}

func (c *Consumer) handleOrderAutoCancel(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_auto_cancel_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderAutoCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_auto_cancel_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_auto_cancel_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if err := c.OrderService.AutoCancel(payload.OrderID); err != nil {
		logger.Warnw("worker_order_auto_cancel_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	logger.Infow("worker_order_auto_cancel_done", "order_id", payload.OrderID)
	return nil
}

func (c *Consumer) handleLowStockAlert(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_low_stock_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.LowStockAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_low_stock_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_low_stock_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}
	product, err := c.ProductService.GetAdmin(payload.ProductID)
	if err != nil {
		logger.Debugw("worker_low_stock_skip_product_gone", "product_id", payload.ProductID, "error", err)
		return nil
	}
	// current stock may have recovered since the checkout that queued this
	remaining, err := c.InventoryService.GetStock(product.ID)
	if err != nil {
		logger.Warnw("worker_low_stock_fetch_stock_failed", "product_id", product.ID, "error", err)
		return err
	}
	logger.Warnw("worker_low_stock_alert",
		"product_id", product.ID,
		"product_name", product.Name,
		"remaining", remaining,
		"reported", payload.Remaining,
	)
	return nil
}
