package service

import (
	"errors"
	"time"

	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"

	"gorm.io/gorm"
)

// OrderService reads order records and drives their status transitions.
// Orders are immutable after checkout except for Status; a pending order can
// be fulfilled or cancelled, and either transition happens exactly once.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, productRepo: productRepo}
}

// Get returns an order owned by the user.
func (s *OrderService) Get(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns the user's orders, newest first.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(filter)
}

// GetAdmin returns any order.
func (s *OrderService) GetAdmin(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin returns orders across all users.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// Fulfill marks a pending order fulfilled. Stock was already consumed at
// checkout, so this is a pure status flip.
func (s *OrderService) Fulfill(orderID uint) (*models.Order, error) {
	order, err := s.GetAdmin(orderID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	affected, err := s.orderRepo.UpdateStatusFrom(orderID, constants.OrderStatusPending, constants.OrderStatusFulfilled, map[string]interface{}{
		"fulfilled_at": &now,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderStateConflict
	}
	order.Status = constants.OrderStatusFulfilled
	order.FulfilledAt = &now
	return order, nil
}

// Cancel cancels a pending order and returns its stock to the ledger. The
// status flip and the releases run in one transaction, so a crash cannot
// leave a cancelled order that kept its stock.
func (s *OrderService) Cancel(orderID uint) (*models.Order, error) {
	order, err := s.GetAdmin(orderID)
	if err != nil {
		return nil, err
	}
	return s.cancel(order)
}

// CancelOwn lets a buyer cancel their own pending order.
func (s *OrderService) CancelOwn(userID, orderID uint) (*models.Order, error) {
	order, err := s.Get(userID, orderID)
	if err != nil {
		return nil, err
	}
	return s.cancel(order)
}

func (s *OrderService) cancel(order *models.Order) (*models.Order, error) {
	orderID := order.ID
	now := time.Now()
	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		affected, err := s.orderRepo.WithTx(tx).UpdateStatusFrom(orderID, constants.OrderStatusPending, constants.OrderStatusCancelled, map[string]interface{}{
			"cancelled_at": &now,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStateConflict
		}
		txProducts := s.productRepo.WithTx(tx)
		for _, item := range order.Items {
			affected, err := txProducts.ReleaseStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				logger.Errorw("cancel released stock into missing product",
					"order_id", orderID,
					"product_id", item.ProductID,
					"quantity", item.Quantity,
				)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	order.Status = constants.OrderStatusCancelled
	order.CancelledAt = &now
	return order, nil
}

// AutoCancel expires a pending order from the delayed queue task. An order
// that was fulfilled or cancelled in the meantime is left alone.
func (s *OrderService) AutoCancel(orderID uint) error {
	_, err := s.Cancel(orderID)
	if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrOrderStateConflict) {
		logger.Infow("auto-cancel skipped, order moved on", "order_id", orderID)
		return nil
	}
	return err
}
