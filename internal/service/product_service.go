package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gauravjat135/galaxy-medical-store/internal/cache"
	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"
)

// ProductService serves the public catalog and its admin mutations. Stock
// changes are not handled here; they go through InventoryService so every
// write stays on the ledger path.
type ProductService struct {
	productRepo repository.ProductRepository
	inventory   *InventoryService
	cacheTTL    time.Duration
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository, inventory *InventoryService, cacheTTLSeconds int) *ProductService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ProductService{
		productRepo: productRepo,
		inventory:   inventory,
		cacheTTL:    ttl,
	}
}

// ProductListResult is one cached page of the catalog.
type ProductListResult struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// List returns active catalog products. The unfiltered first pages are the
// hot path, so they go through redis; filtered queries hit the database.
func (s *ProductService) List(ctx context.Context, filter repository.ProductListFilter) (*ProductListResult, error) {
	filter.OnlyActive = true

	cacheKey := ""
	if cache.Enabled() && filter.Search == "" {
		cacheKey = fmt.Sprintf("%s:%s:p%d:s%d", constants.CacheKeyProductList, filter.Category, filter.Page, filter.PageSize)
		var cached ProductListResult
		hit, err := cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warnw("catalog cache read failed", "key", cacheKey, "error", err)
		}
		if hit {
			return &cached, nil
		}
	}

	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}
	result := &ProductListResult{Products: products, Total: total}

	if cacheKey != "" {
		if err := cache.SetJSON(ctx, cacheKey, result, s.cacheTTL); err != nil {
			logger.Warnw("catalog cache write failed", "key", cacheKey, "error", err)
		}
	}
	return result, nil
}

// ListAdmin returns catalog products without the active filter.
func (s *ProductService) ListAdmin(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyActive = false
	return s.productRepo.List(filter)
}

// Get returns one product for the public detail page.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetAdmin returns one product regardless of active state.
func (s *ProductService) GetAdmin(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a catalog product. The initial stock goes through the ledger
// so the creation path and the restock path write stock the same way.
func (s *ProductService) Create(ctx context.Context, product *models.Product, initialStock int) error {
	if initialStock < 0 {
		return ErrInvalidQuantity
	}
	product.StockQuantity = 0
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	if initialStock > 0 {
		if err := s.inventory.SetStock(product.ID, initialStock); err != nil {
			return err
		}
		product.StockQuantity = initialStock
	}
	s.invalidateCatalogCache(ctx)
	return nil
}

// Update saves descriptive fields of a product.
func (s *ProductService) Update(ctx context.Context, product *models.Product) error {
	existing, err := s.productRepo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.invalidateCatalogCache(ctx)
	return nil
}

// Delete removes a product from the catalog. Cart lines pointing at it are
// pruned lazily on read; existing orders keep their snapshots.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	existing, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalogCache(ctx)
	return nil
}

// Restock overwrites a product's stock and refreshes the catalog cache.
func (s *ProductService) Restock(ctx context.Context, id uint, quantity int) error {
	if err := s.inventory.SetStock(id, quantity); err != nil {
		return err
	}
	s.invalidateCatalogCache(ctx)
	return nil
}

// invalidateCatalogCache drops every cached catalog page after a mutation.
func (s *ProductService) invalidateCatalogCache(ctx context.Context) {
	if !cache.Enabled() {
		return
	}
	pattern := cache.Prefix() + ":" + constants.CacheKeyProductList + ":*"
	iter := cache.Client().Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Warnw("catalog cache scan failed", "pattern", pattern, "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := cache.Client().Del(ctx, keys...).Err(); err != nil {
		logger.Warnw("catalog cache invalidation failed", "keys", len(keys), "error", err)
	}
}
