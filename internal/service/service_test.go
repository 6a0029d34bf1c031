package service

import (
	"testing"

	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/queue"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// serviceTestEnv wires real repositories against a private in-memory
// database. The pool is capped at one connection so concurrent test
// goroutines serialize instead of tripping over sqlite busy errors.
type serviceTestEnv struct {
	db          *gorm.DB
	productRepo *repository.GormProductRepository
	cartRepo    *repository.GormCartRepository
	orderRepo   *repository.GormOrderRepository
	inventory   *InventoryService
	cart        *CartService
	orders      *OrderService
	queueClient *queue.Client
}

func setupServiceTest(t *testing.T) *serviceTestEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}, &models.Employee{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventory := NewInventoryService(productRepo)
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}

	return &serviceTestEnv{
		db:          db,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		inventory:   inventory,
		cart:        NewCartService(cartRepo, productRepo),
		orders:      NewOrderService(orderRepo, productRepo),
		queueClient: queueClient,
	}
}

func (env *serviceTestEnv) newCheckout(t *testing.T) *CheckoutService {
	t.Helper()
	return NewCheckoutService(env.cartRepo, env.productRepo, env.orderRepo, env.inventory, env.queueClient, 5, 0, 0)
}

func (env *serviceTestEnv) seedProduct(t *testing.T, name string, price int64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		Category:      constants.ProductCategoryMedicine,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		StockQuantity: stock,
		IsActive:      true,
	}
	if err := env.productRepo.Create(product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func (env *serviceTestEnv) stockOf(t *testing.T, productID uint) int {
	t.Helper()
	stock, found, err := env.productRepo.GetStock(productID)
	if err != nil {
		t.Fatalf("get stock failed: %v", err)
	}
	if !found {
		t.Fatalf("product %d missing", productID)
	}
	return stock
}
