package service

import (
	"errors"
	"testing"

	"github.com/gauravjat135/galaxy-medical-store/internal/models"
)

func TestCartAddLineMergesDuplicateProduct(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Zinc Tablets", 45, 100)

	first, err := env.cart.AddLine(201, product.ID, 2)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	second, err := env.cart.AddLine(201, product.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("merge should update the same line, got %d and %d", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("merged quantity want 5 got %d", second.Quantity)
	}

	lines, err := env.cart.ListLines(201)
	if err != nil {
		t.Fatalf("list lines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("lines want 1 got %d", len(lines))
	}
}

func TestCartAddLineValidation(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Gauze Pads", 30, 10)

	if _, err := env.cart.AddLine(211, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}
	if _, err := env.cart.AddLine(211, product.ID, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity want ErrInvalidQuantity got %v", err)
	}
	if _, err := env.cart.AddLine(211, 999999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product want ErrProductNotFound got %v", err)
	}

	if err := env.db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if _, err := env.cart.AddLine(211, product.ID, 1); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("inactive product want ErrProductInactive got %v", err)
	}
}

func TestCartAddLineNeverTouchesStock(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Saline Spray", 55, 3)

	// carting more than the stock is allowed, checkout decides
	if _, err := env.cart.AddLine(221, product.ID, 10); err != nil {
		t.Fatalf("add beyond stock failed: %v", err)
	}
	if got := env.stockOf(t, product.ID); got != 3 {
		t.Fatalf("stock want untouched 3 got %d", got)
	}
}

func TestCartSetQuantity(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Ibuprofen 200mg", 95, 20)
	line, err := env.cart.AddLine(231, product.ID, 1)
	if err != nil {
		t.Fatalf("add line failed: %v", err)
	}

	if err := env.cart.SetQuantity(231, line.ID, 7); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	lines, err := env.cart.ListLines(231)
	if err != nil {
		t.Fatalf("list lines failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 7 {
		t.Fatalf("quantity want 7 got %+v", lines)
	}

	// zero and below removes the line
	if err := env.cart.SetQuantity(231, line.ID, 0); err != nil {
		t.Fatalf("set zero failed: %v", err)
	}
	lines, err = env.cart.ListLines(231)
	if err != nil {
		t.Fatalf("list lines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("line should be removed, got %d", len(lines))
	}

	// the remove path is idempotent even for a gone line
	if err := env.cart.SetQuantity(231, line.ID, -3); err != nil {
		t.Fatalf("negative quantity on gone line should remove-noop, got %v", err)
	}

	if err := env.cart.SetQuantity(231, line.ID, 2); !errors.Is(err, ErrCartLineNotFound) {
		t.Fatalf("missing line want ErrCartLineNotFound got %v", err)
	}
}

func TestCartRemoveLineIdempotent(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Face Masks", 20, 30)
	line, err := env.cart.AddLine(241, product.ID, 2)
	if err != nil {
		t.Fatalf("add line failed: %v", err)
	}

	if err := env.cart.RemoveLine(241, line.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := env.cart.RemoveLine(241, line.ID); err != nil {
		t.Fatalf("repeat remove failed: %v", err)
	}

	// removed product can be re-added
	if _, err := env.cart.AddLine(241, product.ID, 1); err != nil {
		t.Fatalf("re-add after remove failed: %v", err)
	}
}

func TestCartListLinesPrunesRetiredProducts(t *testing.T) {
	env := setupServiceTest(t)
	kept := env.seedProduct(t, "Multivitamin", 180, 15)
	retired := env.seedProduct(t, "Discontinued Balm", 70, 15)

	if _, err := env.cart.AddLine(251, kept.ID, 1); err != nil {
		t.Fatalf("add line failed: %v", err)
	}
	if _, err := env.cart.AddLine(251, retired.ID, 1); err != nil {
		t.Fatalf("add line failed: %v", err)
	}
	if err := env.db.Model(&models.Product{}).Where("id = ?", retired.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	lines, err := env.cart.ListLines(251)
	if err != nil {
		t.Fatalf("list lines failed: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != kept.ID {
		t.Fatalf("want only the active product, got %+v", lines)
	}

	// the stale line is gone for good, not just filtered
	lines, err = env.cart.ListLines(251)
	if err != nil {
		t.Fatalf("relist lines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("want 1 line after prune got %d", len(lines))
	}
}

func TestCartClear(t *testing.T) {
	env := setupServiceTest(t)
	product := env.seedProduct(t, "Cotton Swabs", 25, 40)
	if _, err := env.cart.AddLine(261, product.ID, 4); err != nil {
		t.Fatalf("add line failed: %v", err)
	}

	if err := env.cart.Clear(261); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := env.cart.Clear(261); err != nil {
		t.Fatalf("clear empty cart failed: %v", err)
	}
	lines, err := env.cart.ListLines(261)
	if err != nil {
		t.Fatalf("list lines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("cart want empty got %d lines", len(lines))
	}
}
