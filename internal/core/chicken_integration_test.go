package core_test

import (
	"context"
	"errors"
	"testing"

	"khata-backend/internal/core"

	"github.com/shopspring/decimal"
)

func TestChicken_SoldCheckedAgainstRemaining(t *testing.T) {
	pool := setupTestDB(t)
	svc := core.NewChickenService(pool)
	ctx := context.Background()

	_, err := svc.AddRecord(ctx, core.ChickenRecordInput{
		Date:     "2026-08-01",
		Type:     core.ChickenBought,
		Quantity: 100,
		WeightKg: decimal.NewFromFloat(180.5),
		Price:    decimal.NewFromInt(80000),
	})
	if err != nil {
		t.Fatalf("AddRecord bought failed: %v", err)
	}

	_, err = svc.AddRecord(ctx, core.ChickenRecordInput{
		Date:     "2026-08-01",
		Type:     core.ChickenSold,
		Quantity: 40,
		WeightKg: decimal.NewFromFloat(70.0),
		Price:    decimal.NewFromInt(36000),
	})
	if err != nil {
		t.Fatalf("AddRecord sold failed: %v", err)
	}

	// 60 birds remain; selling 70 must be rejected.
	_, err = svc.AddRecord(ctx, core.ChickenRecordInput{
		Date:     "2026-08-01",
		Type:     core.ChickenSold,
		Quantity: 70,
		WeightKg: decimal.NewFromFloat(100.0),
		Price:    decimal.NewFromInt(50000),
	})
	if !errors.Is(err, core.ErrNotEnough) {
		t.Fatalf("oversell = %v, want ErrNotEnough", err)
	}

	// Weight is checked independently of quantity.
	_, err = svc.AddRecord(ctx, core.ChickenRecordInput{
		Date:     "2026-08-01",
		Type:     core.ChickenSold,
		Quantity: 10,
		WeightKg: decimal.NewFromFloat(150.0),
		Price:    decimal.NewFromInt(60000),
	})
	if !errors.Is(err, core.ErrNotEnough) {
		t.Fatalf("overweight sell = %v, want ErrNotEnough", err)
	}

	records, err := svc.ListByDate(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("ListByDate failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records = %d, want 2 (rejected sells must not persist)", len(records))
	}
}

func TestChicken_RemainingIsPerDate(t *testing.T) {
	pool := setupTestDB(t)
	svc := core.NewChickenService(pool)
	ctx := context.Background()

	_, err := svc.AddRecord(ctx, core.ChickenRecordInput{
		Date:     "2026-08-01",
		Type:     core.ChickenBought,
		Quantity: 100,
		WeightKg: decimal.NewFromInt(180),
		Price:    decimal.NewFromInt(80000),
	})
	if err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	// Yesterday's stock does not carry over to today.
	_, err = svc.AddRecord(ctx, core.ChickenRecordInput{
		Date:     "2026-08-02",
		Type:     core.ChickenSold,
		Quantity: 10,
		WeightKg: decimal.NewFromInt(18),
		Price:    decimal.NewFromInt(9000),
	})
	if !errors.Is(err, core.ErrNotEnough) {
		t.Errorf("sell on empty date = %v, want ErrNotEnough", err)
	}
}

func TestChicken_DeleteRecord(t *testing.T) {
	pool := setupTestDB(t)
	svc := core.NewChickenService(pool)
	ctx := context.Background()

	rec, err := svc.AddRecord(ctx, core.ChickenRecordInput{
		Date:     "2026-08-01",
		Type:     core.ChickenBought,
		Quantity: 50,
		WeightKg: decimal.NewFromInt(90),
		Price:    decimal.NewFromInt(40000),
	})
	if err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	if err := svc.DeleteRecord(ctx, rec.ID); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	if err := svc.DeleteRecord(ctx, rec.ID); err != nil {
		t.Errorf("repeated DeleteRecord = %v, want nil", err)
	}

	records, _ := svc.ListByDate(ctx, "2026-08-01")
	if len(records) != 0 {
		t.Errorf("records after delete = %d, want 0", len(records))
	}
}
