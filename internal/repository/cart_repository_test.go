package repository

import (
	"testing"

	"github.com/gauravjat135/galaxy-medical-store/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartLine(t *testing.T, repo *GormCartRepository, userID, productID uint, quantity int) *models.CartItem {
	t.Helper()
	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := repo.Create(item); err != nil {
		t.Fatalf("create cart line failed: %v", err)
	}
	return item
}

func TestCartLineScopedByUser(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	line := createCartLine(t, repo, 301, 9001, 2)
	createCartLine(t, repo, 302, 9001, 5)

	got, err := repo.GetByIDAndUser(line.ID, 301)
	if err != nil {
		t.Fatalf("get by id and user failed: %v", err)
	}
	if got == nil || got.Quantity != 2 {
		t.Fatalf("owner lookup want quantity 2 got %+v", got)
	}

	got, err = repo.GetByIDAndUser(line.ID, 302)
	if err != nil {
		t.Fatalf("cross-user lookup failed: %v", err)
	}
	if got != nil {
		t.Fatalf("cross-user lookup want nil got %+v", got)
	}

	items, err := repo.ListByUser(301)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("list by user want 1 line got %d", len(items))
	}
}

func TestCartGetByUserAndProduct(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	createCartLine(t, repo, 311, 9011, 3)

	got, err := repo.GetByUserAndProduct(311, 9011)
	if err != nil {
		t.Fatalf("get by user and product failed: %v", err)
	}
	if got == nil || got.Quantity != 3 {
		t.Fatalf("want quantity 3 got %+v", got)
	}

	got, err = repo.GetByUserAndProduct(311, 9999)
	if err != nil {
		t.Fatalf("get missing product line failed: %v", err)
	}
	if got != nil {
		t.Fatalf("missing line want nil got %+v", got)
	}
}

func TestCartUpdateQuantityAndDelete(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	line := createCartLine(t, repo, 321, 9021, 1)

	if err := repo.UpdateQuantity(line.ID, 4); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	got, err := repo.GetByIDAndUser(line.ID, 321)
	if err != nil {
		t.Fatalf("reload line failed: %v", err)
	}
	if got == nil || got.Quantity != 4 {
		t.Fatalf("want quantity 4 got %+v", got)
	}

	if err := repo.DeleteByIDAndUser(line.ID, 321); err != nil {
		t.Fatalf("delete line failed: %v", err)
	}
	// deleting again is a no-op
	if err := repo.DeleteByIDAndUser(line.ID, 321); err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
	got, err = repo.GetByIDAndUser(line.ID, 321)
	if err != nil {
		t.Fatalf("reload deleted line failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted line want nil got %+v", got)
	}
}

func TestCartClearByUser(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	createCartLine(t, repo, 331, 9031, 1)
	createCartLine(t, repo, 331, 9032, 2)
	keep := createCartLine(t, repo, 332, 9031, 6)

	if err := repo.ClearByUser(331); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	if err := repo.ClearByUser(331); err != nil {
		t.Fatalf("clear empty cart failed: %v", err)
	}

	items, err := repo.ListByUser(331)
	if err != nil {
		t.Fatalf("list cleared cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cleared cart want 0 lines got %d", len(items))
	}

	got, err := repo.GetByIDAndUser(keep.ID, 332)
	if err != nil {
		t.Fatalf("reload other user's line failed: %v", err)
	}
	if got == nil {
		t.Fatalf("other user's line should survive the clear")
	}
}
