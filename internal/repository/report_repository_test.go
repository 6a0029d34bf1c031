package repository

import (
	"testing"

	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupReportRepositoryTest(t *testing.T) (*GormReportRepository, *gorm.DB) {
	t.Helper()
	// private memory db so aggregates are not polluted by other tests
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Employee{}); err != nil {
		t.Fatalf("migrate report tables failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return NewReportRepository(db), db
}

func seedReportOrder(t *testing.T, db *gorm.DB, orderNo, status string, total int64, items []models.OrderItem) {
	t.Helper()
	order := models.Order{
		OrderNo:     orderNo,
		UserID:      1,
		Status:      status,
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			t.Fatalf("seed order items failed: %v", err)
		}
	}
}

func TestReportOverviewAggregatesByStatus(t *testing.T) {
	repo, db := setupReportRepositoryTest(t)
	seedReportOrder(t, db, "GM-RPT-1", constants.OrderStatusPending, 100, nil)
	seedReportOrder(t, db, "GM-RPT-2", constants.OrderStatusFulfilled, 250, nil)
	seedReportOrder(t, db, "GM-RPT-3", constants.OrderStatusCancelled, 75, nil)
	if err := db.Create(&models.Employee{Name: "Asha", Email: "asha@example.com", Position: "Pharmacist"}).Error; err != nil {
		t.Fatalf("seed employee failed: %v", err)
	}

	overview, err := repo.GetOverview()
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.OrdersTotal != 3 {
		t.Fatalf("orders total want 3 got %d", overview.OrdersTotal)
	}
	if overview.PendingOrders != 1 || overview.FulfilledOrders != 1 || overview.CancelledOrders != 1 {
		t.Fatalf("status counts want 1/1/1 got %d/%d/%d", overview.PendingOrders, overview.FulfilledOrders, overview.CancelledOrders)
	}
	if overview.GrossSales != 425 {
		t.Fatalf("gross sales want 425 got %v", overview.GrossSales)
	}
	if overview.EmployeesTotal != 1 {
		t.Fatalf("employees total want 1 got %d", overview.EmployeesTotal)
	}
}

func TestReportLowStockOnlyActiveAtOrBelowThreshold(t *testing.T) {
	repo, db := setupReportRepositoryTest(t)
	rows := []models.Product{
		{Name: "low-active", Category: constants.ProductCategoryMedicine, StockQuantity: 2, IsActive: true},
		{Name: "low-inactive", Category: constants.ProductCategoryMedicine, StockQuantity: 1, IsActive: false},
		{Name: "healthy", Category: constants.ProductCategoryMedicine, StockQuantity: 50, IsActive: true},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}

	products, err := repo.GetLowStock(5)
	if err != nil {
		t.Fatalf("low stock failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "low-active" {
		t.Fatalf("low stock want [low-active] got %+v", products)
	}
}

func TestReportTopProductsExcludesCancelled(t *testing.T) {
	repo, db := setupReportRepositoryTest(t)
	price := models.NewMoneyFromDecimal(decimal.NewFromInt(10))
	seedReportOrder(t, db, "GM-RPT-TOP-1", constants.OrderStatusFulfilled, 50, []models.OrderItem{
		{ProductID: 1, ProductName: "Cough Syrup", Quantity: 5, Price: price},
	})
	seedReportOrder(t, db, "GM-RPT-TOP-2", constants.OrderStatusPending, 20, []models.OrderItem{
		{ProductID: 1, ProductName: "Cough Syrup", Quantity: 2, Price: price},
		{ProductID: 2, ProductName: "Bandage Roll", Quantity: 1, Price: price},
	})
	seedReportOrder(t, db, "GM-RPT-TOP-3", constants.OrderStatusCancelled, 90, []models.OrderItem{
		{ProductID: 2, ProductName: "Bandage Roll", Quantity: 9, Price: price},
	})

	ranking, err := repo.GetTopProducts(10)
	if err != nil {
		t.Fatalf("top products failed: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("ranking want 2 rows got %d", len(ranking))
	}
	if ranking[0].ProductID != 1 || ranking[0].Quantity != 7 {
		t.Fatalf("top row want product 1 qty 7 got %+v", ranking[0])
	}
	if ranking[1].ProductID != 2 || ranking[1].Quantity != 1 {
		t.Fatalf("second row want product 2 qty 1 got %+v", ranking[1])
	}
}
