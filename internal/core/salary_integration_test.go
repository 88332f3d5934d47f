package core_test

import (
	"context"
	"testing"

	"khata-backend/internal/core"

	"github.com/shopspring/decimal"
)

func TestSalary_UpsertByMonth(t *testing.T) {
	pool := setupTestDB(t)
	svc := core.NewSalaryService(pool)
	ctx := context.Background()

	first, err := svc.AddSalary(ctx, core.SalaryInput{
		EmployeeName: "akram",
		Month:        "2026-08",
		TotalPay:     decimal.NewFromInt(30000),
		Paid:         decimal.NewFromInt(10000),
	})
	if err != nil {
		t.Fatalf("AddSalary failed: %v", err)
	}

	// Same employee and month replaces the record rather than adding a second.
	second, err := svc.AddSalary(ctx, core.SalaryInput{
		EmployeeName: "Akram",
		Month:        "2026-08",
		TotalPay:     decimal.NewFromInt(30000),
		Paid:         decimal.NewFromInt(25000),
	})
	if err != nil {
		t.Fatalf("second AddSalary failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new row: ids %d and %d", first.ID, second.ID)
	}

	records, err := svc.ListSalaries(ctx, "2026-08")
	if err != nil {
		t.Fatalf("ListSalaries failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records for 2026-08 = %d, want 1", len(records))
	}
	if !records[0].Paid.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("paid = %s, want 25000", records[0].Paid)
	}
	if records[0].EmployeeName != "Akram" {
		t.Errorf("employee name = %q, want normalized %q", records[0].EmployeeName, "Akram")
	}

	// A different month is its own record.
	third, err := svc.AddSalary(ctx, core.SalaryInput{
		EmployeeName: "Akram",
		Month:        "2026-09",
		TotalPay:     decimal.NewFromInt(30000),
		Paid:         decimal.NewFromInt(0),
	})
	if err != nil {
		t.Fatalf("third AddSalary failed: %v", err)
	}
	if third.ID == first.ID {
		t.Error("new month reused the old record")
	}
}

func TestSalary_UpdateAndDelete(t *testing.T) {
	pool := setupTestDB(t)
	svc := core.NewSalaryService(pool)
	ctx := context.Background()

	rec, err := svc.AddSalary(ctx, core.SalaryInput{
		EmployeeName: "Akram",
		Month:        "2026-08",
		TotalPay:     decimal.NewFromInt(30000),
		Paid:         decimal.NewFromInt(10000),
	})
	if err != nil {
		t.Fatalf("AddSalary failed: %v", err)
	}

	if err := svc.UpdateSalary(ctx, rec.ID, decimal.NewFromInt(32000), decimal.NewFromInt(32000), "0300-1111111"); err != nil {
		t.Fatalf("UpdateSalary failed: %v", err)
	}
	records, _ := svc.ListSalaries(ctx, "2026-08")
	if len(records) != 1 || !records[0].TotalPay.Equal(decimal.NewFromInt(32000)) {
		t.Fatalf("records after update = %+v", records)
	}

	if err := svc.DeleteSalary(ctx, rec.ID); err != nil {
		t.Fatalf("DeleteSalary failed: %v", err)
	}
	records, _ = svc.ListSalaries(ctx, "2026-08")
	if len(records) != 0 {
		t.Errorf("records after delete = %d, want 0", len(records))
	}

	// Deleting again is a no-op.
	if err := svc.DeleteSalary(ctx, rec.ID); err != nil {
		t.Errorf("repeated DeleteSalary = %v, want nil", err)
	}
}
