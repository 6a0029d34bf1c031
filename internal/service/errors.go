package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart rejects a checkout with no cart lines.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrInsufficientStock reports a failed stock reservation. The concrete
	// error is an InsufficientStockError naming the product.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrCommitFailed reports that stock was reserved but the order record
	// could not be written; reservations were rolled back and the cart is
	// untouched, so the checkout is safe to retry.
	ErrCommitFailed = errors.New("order commit failed, checkout may be retried")
	// ErrInvalidQuantity rejects a zero or negative requested quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrStockInvariant reports a stock release that matched no product row.
	// Releases must mirror reservations, so this is a programming error, not
	// a recoverable condition.
	ErrStockInvariant = errors.New("stock release did not match a reservation")

	ErrProductNotFound  = errors.New("product not found")
	ErrProductInactive  = errors.New("product is not available")
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrOrderNotFound    = errors.New("order not found")
	// ErrOrderStateConflict reports a status transition that lost to a
	// concurrent one; the order is no longer in the expected state.
	ErrOrderStateConflict = errors.New("order is not in the expected state")

	ErrEmployeeNotFound = errors.New("employee not found")
)

// InsufficientStockError names the first product whose reservation failed.
type InsufficientStockError struct {
	ProductID uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}

// Is lets errors.Is(err, ErrInsufficientStock) match.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
