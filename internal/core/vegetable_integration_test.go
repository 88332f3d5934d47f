package core_test

import (
	"context"
	"errors"
	"testing"

	"khata-backend/internal/core"

	"github.com/shopspring/decimal"
)

func TestVegetable_CatalogDuplicates(t *testing.T) {
	pool := setupTestDB(t)
	svc := core.NewVegetableService(pool)
	ctx := context.Background()

	name, err := svc.AddName(ctx, "Potato", "")
	if err != nil {
		t.Fatalf("AddName failed: %v", err)
	}
	if name.Unit != "kg" {
		t.Errorf("default unit = %q, want kg", name.Unit)
	}

	if _, err := svc.AddName(ctx, " potato ", "kg"); !errors.Is(err, core.ErrDuplicate) {
		t.Fatalf("AddName with case-variant = %v, want ErrDuplicate", err)
	}

	if err := svc.UpdateName(ctx, name.ID, "POTATO", "bag"); err != nil {
		t.Errorf("UpdateName to own name = %v, want nil", err)
	}

	names, err := svc.ListNames(ctx)
	if err != nil {
		t.Fatalf("ListNames failed: %v", err)
	}
	if len(names) != 1 || names[0].Unit != "bag" {
		t.Fatalf("names = %+v", names)
	}
}

func TestVegetable_SoldMayExceedBought(t *testing.T) {
	pool := setupTestDB(t)
	svc := core.NewVegetableService(pool)
	ctx := context.Background()

	row, err := svc.AddVegetable(ctx, "2026-08-01", "Potato", decimal.NewFromInt(50), decimal.NewFromInt(4000))
	if err != nil {
		t.Fatalf("AddVegetable failed: %v", err)
	}

	// Sold figures are recorded as given; there is no stock check on produce.
	if err := svc.UpdateVegetable(ctx, row.ID, decimal.NewFromInt(60), decimal.NewFromInt(5400)); err != nil {
		t.Fatalf("UpdateVegetable failed: %v", err)
	}

	rows, err := svc.ListByDate(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("ListByDate failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if !rows[0].QtySold.Equal(decimal.NewFromInt(60)) {
		t.Errorf("qty_sold = %s, want 60", rows[0].QtySold)
	}
	if !rows[0].QtyBought.Equal(decimal.NewFromInt(50)) {
		t.Errorf("qty_bought = %s, want 50 (update must not touch it)", rows[0].QtyBought)
	}

	if err := svc.DeleteVegetable(ctx, row.ID); err != nil {
		t.Fatalf("DeleteVegetable failed: %v", err)
	}
	rows, _ = svc.ListByDate(ctx, "2026-08-01")
	if len(rows) != 0 {
		t.Errorf("rows after delete = %d, want 0", len(rows))
	}
}
