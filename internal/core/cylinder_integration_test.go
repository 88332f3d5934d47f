package core_test

import (
	"context"
	"errors"
	"testing"

	"khata-backend/internal/core"

	"github.com/shopspring/decimal"
)

func setupCylinderTest(t *testing.T) (core.CylinderService, core.ClientService, context.Context) {
	t.Helper()
	pool := setupTestDB(t)
	return core.NewCylinderService(pool), core.NewClientService(pool), context.Background()
}

func addTestType(t *testing.T, ctx context.Context, svc core.CylinderService, name string, stock int) *core.CylinderType {
	t.Helper()
	ct, err := svc.AddType(ctx, core.CylinderTypeInput{
		Name:          name,
		WeightKg:      decimal.NewFromFloat(11.8),
		CylinderPrice: decimal.NewFromInt(3500),
		GasPrice:      decimal.NewFromInt(2950),
		NoOfCylinders: stock,
	})
	if err != nil {
		t.Fatalf("AddType(%q) failed: %v", name, err)
	}
	return ct
}

func stockOf(t *testing.T, ctx context.Context, svc core.CylinderService, typeID int) int {
	t.Helper()
	ct, err := svc.GetType(ctx, typeID)
	if err != nil {
		t.Fatalf("GetType(%d) failed: %v", typeID, err)
	}
	return ct.NoOfCylinders
}

func TestCylinder_AssignDecrementsStock(t *testing.T) {
	cylSvc, clientSvc, ctx := setupCylinderTest(t)

	ct := addTestType(t, ctx, cylSvc, "Small", 10)
	client, err := clientSvc.AddClient(ctx, "Ali Traders", "0333-4567890")
	if err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}

	if err := cylSvc.Assign(ctx, client.ID, ct.ID, 4, "2026-08-01"); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 6 {
		t.Errorf("stock after assign = %d, want 6", got)
	}

	assignments, err := cylSvc.ListAssignments(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("ListAssignments failed: %v", err)
	}
	if len(assignments) != 1 || assignments[0].Quantity != 4 {
		t.Fatalf("assignments = %+v, want one row with quantity 4", assignments)
	}
	if assignments[0].ClientName != "Ali Traders" || assignments[0].CylinderTypeName != "Small" {
		t.Errorf("joined names = %q / %q", assignments[0].ClientName, assignments[0].CylinderTypeName)
	}
}

func TestCylinder_AssignInsufficientStock(t *testing.T) {
	cylSvc, clientSvc, ctx := setupCylinderTest(t)

	ct := addTestType(t, ctx, cylSvc, "Small", 10)
	client, err := clientSvc.AddClient(ctx, "Ali Traders", "")
	if err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}

	err = cylSvc.Assign(ctx, client.ID, ct.ID, 11, "2026-08-01")
	if !errors.Is(err, core.ErrNotEnough) {
		t.Fatalf("Assign over stock = %v, want ErrNotEnough", err)
	}

	// Nothing must change on rejection.
	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 10 {
		t.Errorf("stock after rejected assign = %d, want 10", got)
	}
	assignments, err := cylSvc.ListAssignments(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("ListAssignments failed: %v", err)
	}
	if len(assignments) != 0 {
		t.Errorf("assignments after rejected assign = %+v, want none", assignments)
	}
}

func TestCylinder_AssignMergesSameDay(t *testing.T) {
	cylSvc, clientSvc, ctx := setupCylinderTest(t)

	ct := addTestType(t, ctx, cylSvc, "Small", 10)
	client, err := clientSvc.AddClient(ctx, "Ali Traders", "")
	if err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}

	if err := cylSvc.Assign(ctx, client.ID, ct.ID, 3, "2026-08-01"); err != nil {
		t.Fatalf("first Assign failed: %v", err)
	}
	if err := cylSvc.Assign(ctx, client.ID, ct.ID, 4, "2026-08-01"); err != nil {
		t.Fatalf("second Assign failed: %v", err)
	}

	assignments, err := cylSvc.ListAssignments(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("ListAssignments failed: %v", err)
	}
	if len(assignments) != 1 || assignments[0].Quantity != 7 {
		t.Fatalf("assignments = %+v, want single merged row with quantity 7", assignments)
	}
	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 3 {
		t.Errorf("stock after merge = %d, want 3", got)
	}

	// Stock is checked before the merge: only 3 left, so 4 more must fail.
	if err := cylSvc.Assign(ctx, client.ID, ct.ID, 4, "2026-08-01"); !errors.Is(err, core.ErrNotEnough) {
		t.Errorf("third Assign = %v, want ErrNotEnough", err)
	}
}

func TestCylinder_UpdateAssignmentAdjustsStock(t *testing.T) {
	cylSvc, clientSvc, ctx := setupCylinderTest(t)

	ct := addTestType(t, ctx, cylSvc, "Small", 10)
	client, err := clientSvc.AddClient(ctx, "Ali Traders", "")
	if err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}
	if err := cylSvc.Assign(ctx, client.ID, ct.ID, 4, "2026-08-01"); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	assignments, _ := cylSvc.ListAssignments(ctx, "2026-08-01")
	id := assignments[0].ID

	// 4 -> 7 takes 3 more from stock.
	if err := cylSvc.UpdateAssignment(ctx, id, 7); err != nil {
		t.Fatalf("UpdateAssignment up failed: %v", err)
	}
	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 3 {
		t.Errorf("stock after increase = %d, want 3", got)
	}

	// 7 -> 2 returns 5.
	if err := cylSvc.UpdateAssignment(ctx, id, 2); err != nil {
		t.Fatalf("UpdateAssignment down failed: %v", err)
	}
	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 8 {
		t.Errorf("stock after decrease = %d, want 8", got)
	}

	// 2 -> 11 would need 9 more but only 8 remain.
	if err := cylSvc.UpdateAssignment(ctx, id, 11); !errors.Is(err, core.ErrNotEnough) {
		t.Errorf("UpdateAssignment over stock = %v, want ErrNotEnough", err)
	}
	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 8 {
		t.Errorf("stock after rejected update = %d, want 8", got)
	}

	if err := cylSvc.UpdateAssignment(ctx, 999999, 5); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("UpdateAssignment on missing row = %v, want ErrNotFound", err)
	}
}

func TestCylinder_DeleteAssignmentReturnsStock(t *testing.T) {
	cylSvc, clientSvc, ctx := setupCylinderTest(t)

	ct := addTestType(t, ctx, cylSvc, "Small", 10)
	client, err := clientSvc.AddClient(ctx, "Ali Traders", "")
	if err != nil {
		t.Fatalf("AddClient failed: %v", err)
	}
	if err := cylSvc.Assign(ctx, client.ID, ct.ID, 4, "2026-08-01"); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	assignments, _ := cylSvc.ListAssignments(ctx, "2026-08-01")

	if err := cylSvc.DeleteAssignment(ctx, assignments[0].ID); err != nil {
		t.Fatalf("DeleteAssignment failed: %v", err)
	}
	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 10 {
		t.Errorf("stock after delete = %d, want 10", got)
	}

	// Deleting an id that no longer exists is a silent no-op.
	if err := cylSvc.DeleteAssignment(ctx, assignments[0].ID); err != nil {
		t.Errorf("second DeleteAssignment = %v, want nil", err)
	}
	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 10 {
		t.Errorf("stock after repeated delete = %d, want 10", got)
	}
}

func TestCylinder_DuplicateTypeName(t *testing.T) {
	cylSvc, _, ctx := setupCylinderTest(t)

	ct := addTestType(t, ctx, cylSvc, "Small", 10)

	_, err := cylSvc.AddType(ctx, core.CylinderTypeInput{Name: "  small "})
	if !errors.Is(err, core.ErrDuplicate) {
		t.Fatalf("AddType with case-variant name = %v, want ErrDuplicate", err)
	}

	// Renaming a type to its own name must not trip the duplicate check.
	err = cylSvc.UpdateType(ctx, ct.ID, core.CylinderTypeInput{
		Name:          "SMALL",
		WeightKg:      decimal.NewFromFloat(11.8),
		CylinderPrice: decimal.NewFromInt(3600),
		GasPrice:      decimal.NewFromInt(2950),
		NoOfCylinders: 12,
	})
	if err != nil {
		t.Fatalf("UpdateType to own name failed: %v", err)
	}
	if got := stockOf(t, ctx, cylSvc, ct.ID); got != 12 {
		t.Errorf("stock after update = %d, want 12", got)
	}
}
