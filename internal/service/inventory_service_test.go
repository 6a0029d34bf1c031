package service

import (
	"errors"
	"sync"
	"testing"
)

func TestInventoryTryReserveAndRelease(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Glucose Powder", 60, 10)

	if err := env.inventory.TryReserve(product.ID, 4); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if got := env.stockOf(t, product.ID); got != 6 {
		t.Fatalf("stock want 6 got %d", got)
	}

	err := env.inventory.TryReserve(product.ID, 7)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("over-reserve want ErrInsufficientStock got %v", err)
	}
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) || stockErr.ProductID != product.ID {
		t.Fatalf("want InsufficientStockError for product %d got %v", product.ID, err)
	}
	// failed reserve changes nothing
	if got := env.stockOf(t, product.ID); got != 6 {
		t.Fatalf("stock want 6 got %d", got)
	}

	if err := env.inventory.Release(product.ID, 4); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if got := env.stockOf(t, product.ID); got != 10 {
		t.Fatalf("stock want 10 got %d", got)
	}
}

func TestInventoryValidation(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Eye Drops", 110, 5)

	if err := env.inventory.TryReserve(product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero reserve want ErrInvalidQuantity got %v", err)
	}
	if err := env.inventory.TryReserve(999999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product want ErrProductNotFound got %v", err)
	}
	if err := env.inventory.SetStock(product.ID, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative set want ErrInvalidQuantity got %v", err)
	}
	if err := env.inventory.SetStock(999999, 3); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("set on missing product want ErrProductNotFound got %v", err)
	}
	if err := env.inventory.Release(999999, 1); !errors.Is(err, ErrStockInvariant) {
		t.Fatalf("release on missing product want ErrStockInvariant got %v", err)
	}
}

func TestInventorySetStock(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Calcium Tablets", 130, 1)

	if err := env.inventory.SetStock(product.ID, 25); err != nil {
		t.Fatalf("set stock failed: %v", err)
	}
	got, err := env.inventory.GetStock(product.ID)
	if err != nil {
		t.Fatalf("get stock failed: %v", err)
	}
	if got != 25 {
		t.Fatalf("stock want 25 got %d", got)
	}

	// zero is a valid count
	if err := env.inventory.SetStock(product.ID, 0); err != nil {
		t.Fatalf("set zero failed: %v", err)
	}
	got, err = env.inventory.GetStock(product.ID)
	if err != nil {
		t.Fatalf("get stock failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("stock want 0 got %d", got)
	}
}

func TestInventoryConcurrentReservesNeverOversell(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Syringe Pack", 40, 10)

	const workers = 20
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = env.inventory.TryReserve(product.ID, 1)
		}(i)
	}
	wg.Wait()

	var won int
	for _, err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrInsufficientStock):
		default:
			t.Fatalf("unexpected reserve error: %v", err)
		}
	}
	if won != 10 {
		t.Fatalf("want exactly 10 successful reserves got %d", won)
	}
	if got := env.stockOf(t, product.ID); got != 0 {
		t.Fatalf("stock want 0 got %d", got)
	}
}
