package repository

import (
	"testing"

	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, name string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		Category:      constants.ProductCategoryMedicine,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(250)),
		StockQuantity: stock,
		IsActive:      true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestStockReserveReleaseLifecycle(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "stock-lifecycle", 10)

	affected, err := repo.ReserveStock(product.ID, 3)
	if err != nil {
		t.Fatalf("reserve stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("reserve affected want 1 got %d", affected)
	}

	affected, err = repo.ReleaseStock(product.ID, 1)
	if err != nil {
		t.Fatalf("release stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("release affected want 1 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.StockQuantity != 8 {
		t.Fatalf("stock want 8 got %d", got.StockQuantity)
	}

	affected, err = repo.ReserveStock(product.ID, 9)
	if err != nil {
		t.Fatalf("reserve over available failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("reserve over available affected want 0 got %d", affected)
	}

	affected, err = repo.ReserveStock(product.ID, 8)
	if err != nil {
		t.Fatalf("reserve exact available failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("reserve exact available affected want 1 got %d", affected)
	}

	stock, found, err := repo.GetStock(product.ID)
	if err != nil {
		t.Fatalf("get stock failed: %v", err)
	}
	if !found {
		t.Fatalf("get stock want found")
	}
	if stock != 0 {
		t.Fatalf("stock want 0 got %d", stock)
	}
}

func TestReserveStockRejectsNonPositiveQuantity(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "stock-non-positive", 5)

	if _, err := repo.ReserveStock(product.ID, 0); err == nil {
		t.Fatalf("reserve zero want error")
	}
	if _, err := repo.ReserveStock(product.ID, -2); err == nil {
		t.Fatalf("reserve negative want error")
	}
	if _, err := repo.ReleaseStock(product.ID, 0); err == nil {
		t.Fatalf("release zero want error")
	}

	stock, _, err := repo.GetStock(product.ID)
	if err != nil {
		t.Fatalf("get stock failed: %v", err)
	}
	if stock != 5 {
		t.Fatalf("stock want 5 got %d", stock)
	}
}

func TestSetStockOverwritesQuantity(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "stock-set", 2)

	affected, err := repo.SetStock(product.ID, 40)
	if err != nil {
		t.Fatalf("set stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("set stock affected want 1 got %d", affected)
	}

	stock, _, err := repo.GetStock(product.ID)
	if err != nil {
		t.Fatalf("get stock failed: %v", err)
	}
	if stock != 40 {
		t.Fatalf("stock want 40 got %d", stock)
	}

	if _, err := repo.SetStock(product.ID, -1); err == nil {
		t.Fatalf("set negative stock want error")
	}
}

func TestGetStockMissingProduct(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	_, found, err := repo.GetStock(987654)
	if err != nil {
		t.Fatalf("get stock failed: %v", err)
	}
	if found {
		t.Fatalf("get stock want not found")
	}
}

func TestUpdateDoesNotTouchStockQuantity(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "stock-update-omit", 7)

	product.Name = "stock-update-omit-renamed"
	product.StockQuantity = 999
	if err := repo.Update(product); err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Name != "stock-update-omit-renamed" {
		t.Fatalf("name want renamed got %s", got.Name)
	}
	if got.StockQuantity != 7 {
		t.Fatalf("stock want 7 got %d", got.StockQuantity)
	}
}

func TestProductListFiltersCategoryAndActive(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	medicine := createTestProduct(t, repo, "list-filter-medicine", 3)

	essentials := &models.Product{
		Name:          "list-filter-essentials",
		Category:      constants.ProductCategoryEssentials,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(99)),
		StockQuantity: 3,
		IsActive:      true,
	}
	if err := repo.Create(essentials); err != nil {
		t.Fatalf("create essentials failed: %v", err)
	}
	inactive := createTestProduct(t, repo, "list-filter-inactive", 3)
	if err := db.Model(&models.Product{}).Where("id = ?", inactive.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	products, _, err := repo.List(ProductListFilter{
		Category:   constants.ProductCategoryMedicine,
		Search:     "list-filter",
		OnlyActive: true,
		Page:       1,
		PageSize:   100,
	})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	got := make(map[uint]bool, len(products))
	for _, item := range products {
		got[item.ID] = true
	}
	if !got[medicine.ID] {
		t.Fatalf("expect medicine product in listing")
	}
	if got[essentials.ID] {
		t.Fatalf("essentials product should be filtered by category")
	}
	if got[inactive.ID] {
		t.Fatalf("inactive product should be filtered")
	}
}
