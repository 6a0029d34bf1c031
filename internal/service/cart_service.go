package service

import (
	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"
)

// CartService manages pre-checkout cart lines. Carts never touch stock: a
// line is a wish, not a reservation, and prices are resolved at checkout.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// AddLine puts a product into the user's cart. Adding a product already in
// the cart increments the existing line instead of creating a second one.
func (s *CartService) AddLine(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		if err := s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		existing.Product = product
		return existing, nil
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// SetQuantity overwrites a line's quantity. Anything at or below zero means
// remove, and the remove path stays idempotent like RemoveLine.
func (s *CartService) SetQuantity(userID, lineID uint, quantity int) error {
	if quantity <= 0 {
		return s.cartRepo.DeleteByIDAndUser(lineID, userID)
	}
	line, err := s.cartRepo.GetByIDAndUser(lineID, userID)
	if err != nil {
		return err
	}
	if line == nil {
		return ErrCartLineNotFound
	}
	return s.cartRepo.UpdateQuantity(lineID, quantity)
}

// RemoveLine deletes a line. Removing an absent line is a no-op so retries
// and double clicks stay harmless.
func (s *CartService) RemoveLine(userID, lineID uint) error {
	return s.cartRepo.DeleteByIDAndUser(lineID, userID)
}

// ListLines returns the user's cart. Lines whose product was removed or
// deactivated since they were added are dropped from the cart on read.
func (s *CartService) ListLines(userID uint) ([]models.CartItem, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	visible := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil || !item.Product.IsActive {
			if err := s.cartRepo.DeleteByIDAndUser(item.ID, userID); err != nil {
				logger.Warnw("prune stale cart line failed",
					"cart_item_id", item.ID,
					"user_id", userID,
					"error", err,
				)
			}
			continue
		}
		visible = append(visible, item)
	}
	return visible, nil
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}
