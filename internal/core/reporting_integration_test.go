package core_test

import (
	"context"
	"testing"

	"khata-backend/internal/core"

	"github.com/shopspring/decimal"
)

func TestReporting_DashboardSummary(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	cylSvc := core.NewCylinderService(pool)
	clientSvc := core.NewClientService(pool)
	vegSvc := core.NewVegetableService(pool)
	chickenSvc := core.NewChickenService(pool)
	reports := core.NewReportingService(pool, cylSvc, clientSvc, vegSvc, chickenSvc)

	ct := addTestType(t, ctx, cylSvc, "Small", 20)
	client, err := clientSvc.AddClient(ctx, "Ali Traders", "")
	if err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}
	if err := cylSvc.Assign(ctx, client.ID, ct.ID, 6, "2026-08-01"); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	if _, err := vegSvc.AddVegetable(ctx, "2026-08-01", "Potato", decimal.NewFromInt(50), decimal.NewFromInt(4000)); err != nil {
		t.Fatalf("AddVegetable failed: %v", err)
	}

	if _, err := chickenSvc.AddRecord(ctx, core.ChickenRecordInput{
		Date: "2026-08-01", Type: core.ChickenBought,
		Quantity: 100, WeightKg: decimal.NewFromInt(180), Price: decimal.NewFromInt(80000),
	}); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	summary, err := reports.DashboardSummary(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("DashboardSummary failed: %v", err)
	}

	// 20 started, 6 out: fleet total must still be 20.
	if summary.AvailableTotal != 14 {
		t.Errorf("available = %d, want 14", summary.AvailableTotal)
	}
	if summary.AssignedTotal != 6 {
		t.Errorf("assigned = %d, want 6", summary.AssignedTotal)
	}
	if summary.AvailableTotal+summary.AssignedTotal != 20 {
		t.Errorf("fleet total = %d, want 20", summary.AvailableTotal+summary.AssignedTotal)
	}

	if !summary.VegetableBought.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("vegetable bought = %s, want 4000", summary.VegetableBought)
	}
	if !summary.ChickenBoughtKg.Equal(decimal.NewFromInt(180)) {
		t.Errorf("chicken bought kg = %s, want 180", summary.ChickenBoughtKg)
	}
	if len(summary.Assignments) != 1 {
		t.Errorf("assignments = %d, want 1", len(summary.Assignments))
	}
}

func TestReporting_DailyReport(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	cylSvc := core.NewCylinderService(pool)
	clientSvc := core.NewClientService(pool)
	vegSvc := core.NewVegetableService(pool)
	chickenSvc := core.NewChickenService(pool)
	reports := core.NewReportingService(pool, cylSvc, clientSvc, vegSvc, chickenSvc)

	client, err := clientSvc.AddClient(ctx, "Ali Traders", "")
	if err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}
	if _, err := clientSvc.AddItem(ctx, client.ID, "Regulator", decimal.NewFromInt(2), "2026-08-01"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := vegSvc.AddName(ctx, "Potato", "kg"); err != nil {
		t.Fatalf("AddName failed: %v", err)
	}
	if _, err := vegSvc.AddVegetable(ctx, "2026-08-01", "Potato", decimal.NewFromInt(50), decimal.NewFromInt(4000)); err != nil {
		t.Fatalf("AddVegetable failed: %v", err)
	}

	report, err := reports.DailyReport(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("DailyReport failed: %v", err)
	}
	if len(report.Vegetables) != 1 || len(report.ClientItems) != 1 || len(report.VegetableNames) != 1 {
		t.Errorf("report = %+v", report)
	}

	// A date with no activity yields an empty report, not an error.
	empty, err := reports.DailyReport(ctx, "2026-08-02")
	if err != nil {
		t.Fatalf("DailyReport on empty date failed: %v", err)
	}
	if len(empty.Vegetables) != 0 || len(empty.ChickenRecords) != 0 || len(empty.ClientItems) != 0 {
		t.Errorf("empty report = %+v", empty)
	}
}
