package service

import (
	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"
)

// InventoryService owns the stock ledger. Every mutation goes through the
// repository's single-statement conditional updates, so concurrent callers
// against the same product serialize at the database row.
type InventoryService struct {
	productRepo repository.ProductRepository
}

// NewInventoryService creates the inventory service.
func NewInventoryService(productRepo repository.ProductRepository) *InventoryService {
	return &InventoryService{productRepo: productRepo}
}

// GetStock returns the committed stock count for a product.
func (s *InventoryService) GetStock(productID uint) (int, error) {
	stock, found, err := s.productRepo.GetStock(productID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrProductNotFound
	}
	return stock, nil
}

// TryReserve atomically decrements stock when enough is available. Exactly
// one of two outcomes: the full quantity is reserved, or nothing changes and
// an InsufficientStockError comes back.
func (s *InventoryService) TryReserve(productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	_, found, err := s.productRepo.GetStock(productID)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	affected, err := s.productRepo.ReserveStock(productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &InsufficientStockError{ProductID: productID}
	}
	return nil
}

// Release returns previously reserved stock. Every release must mirror an
// earlier reservation, so a release that matches no row is a broken invariant:
// it is logged loudly and reported as ErrStockInvariant, never clamped.
func (s *InventoryService) Release(productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	affected, err := s.productRepo.ReleaseStock(productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		logger.Errorw("stock release hit missing product",
			"product_id", productID,
			"quantity", quantity,
		)
		return ErrStockInvariant
	}
	return nil
}

// SetStock overwrites the stock count (admin restock or correction).
func (s *InventoryService) SetStock(productID uint, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	affected, err := s.productRepo.SetStock(productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
