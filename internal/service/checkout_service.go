package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/queue"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService converts a cart into an order. The flow is two-phase:
// first reserve stock line by line through the ledger, then write the order
// record and clear the cart in one transaction. Any failure after a partial
// reservation compensates by releasing what was taken, so stock is never
// leaked and the cart survives every failed attempt.
type CheckoutService struct {
	cartRepo          repository.CartRepository
	productRepo       repository.ProductRepository
	orderRepo         repository.OrderRepository
	inventory         *InventoryService
	queueClient       *queue.Client
	commitTimeout     time.Duration
	autoCancelAfter   time.Duration
	lowStockThreshold int
}

// NewCheckoutService creates the checkout service.
func NewCheckoutService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository, inventory *InventoryService, queueClient *queue.Client, commitTimeoutSeconds, autoCancelMinutes, lowStockThreshold int) *CheckoutService {
	commitTimeout := time.Duration(commitTimeoutSeconds) * time.Second
	if commitTimeout <= 0 {
		commitTimeout = 5 * time.Second
	}
	return &CheckoutService{
		cartRepo:          cartRepo,
		productRepo:       productRepo,
		orderRepo:         orderRepo,
		inventory:         inventory,
		queueClient:       queueClient,
		commitTimeout:     commitTimeout,
		autoCancelAfter:   time.Duration(autoCancelMinutes) * time.Minute,
		lowStockThreshold: lowStockThreshold,
	}
}

// checkoutLine is one cart line with its checkout-time price resolved.
type checkoutLine struct {
	ProductID   uint
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// Checkout runs the full checkout for a user's cart.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint) (*models.Order, error) {
	lines, err := s.resolveLines(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Reservation phase. Ascending product id keeps concurrent checkouts
	// acquiring rows in the same order.
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	reserved := make([]checkoutLine, 0, len(lines))
	for _, line := range lines {
		if err := s.inventory.TryReserve(line.ProductID, line.Quantity); err != nil {
			s.releaseLines(reserved)
			return nil, err
		}
		reserved = append(reserved, line)
	}

	order, err := s.commitOrder(ctx, userID, lines)
	if err != nil {
		s.releaseLines(reserved)
		logger.Errorw("checkout commit failed, reservations released",
			"user_id", userID,
			"lines", len(lines),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}

	s.afterCheckout(order, lines)
	return order, nil
}

// resolveLines loads the cart and snapshots names and prices. Lines whose
// product vanished or was deactivated since they were added are skipped.
func (s *CheckoutService) resolveLines(userID uint) ([]checkoutLine, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	lines := make([]checkoutLine, 0, len(items))
	for _, item := range items {
		if item.Product == nil || !item.Product.IsActive {
			continue
		}
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		lines = append(lines, checkoutLine{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price.Decimal,
		})
	}
	return lines, nil
}

// commitOrder writes the order and clears the cart in one transaction,
// bounded by the commit timeout so a stalled database cannot hold
// reservations indefinitely.
func (s *CheckoutService) commitOrder(ctx context.Context, userID uint, lines []checkoutLine) (*models.Order, error) {
	commitCtx, cancel := context.WithTimeout(ctx, s.commitTimeout)
	defer cancel()

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       models.NewMoneyFromDecimal(line.Price),
		})
	}

	order := &models.Order{
		OrderNo:     generateOrderNo(),
		UserID:      userID,
		Status:      constants.OrderStatusPending,
		TotalAmount: models.NewMoneyFromDecimal(total),
	}

	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		tx = tx.WithContext(commitCtx)
		if err := s.orderRepo.WithTx(tx).Create(order, orderItems); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}
	order.Items = orderItems
	return order, nil
}

// releaseLines compensates a failed checkout, newest reservation first.
func (s *CheckoutService) releaseLines(reserved []checkoutLine) {
	for i := len(reserved) - 1; i >= 0; i-- {
		line := reserved[i]
		if err := s.inventory.Release(line.ProductID, line.Quantity); err != nil {
			logger.Errorw("stock release failed during checkout compensation",
				"product_id", line.ProductID,
				"quantity", line.Quantity,
				"error", err,
			)
		}
	}
}

// afterCheckout schedules the post-commit tasks. Failures here are logged
// only; the order is already committed.
func (s *CheckoutService) afterCheckout(order *models.Order, lines []checkoutLine) {
	if s.autoCancelAfter > 0 {
		err := s.queueClient.EnqueueOrderAutoCancel(queue.OrderAutoCancelPayload{OrderID: order.ID}, s.autoCancelAfter)
		if err != nil {
			logger.Warnw("enqueue auto-cancel failed", "order_id", order.ID, "error", err)
		}
	}
	if s.lowStockThreshold <= 0 {
		return
	}
	for _, line := range lines {
		remaining, found, err := s.productRepo.GetStock(line.ProductID)
		if err != nil || !found {
			continue
		}
		if remaining > s.lowStockThreshold {
			continue
		}
		err = s.queueClient.EnqueueLowStockAlert(queue.LowStockAlertPayload{
			ProductID: line.ProductID,
			Remaining: remaining,
		})
		if err != nil {
			logger.Warnw("enqueue low-stock alert failed", "product_id", line.ProductID, "error", err)
		}
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("GM%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
