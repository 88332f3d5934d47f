package core_test

import (
	"context"
	"testing"

	"khata-backend/internal/core"

	"github.com/shopspring/decimal"
)

func setupSalesTest(t *testing.T) (core.SalesService, context.Context) {
	t.Helper()
	pool := setupTestDB(t)
	return core.NewSalesService(pool), context.Background()
}

func customerByName(t *testing.T, ctx context.Context, svc core.SalesService, name string) *core.Customer {
	t.Helper()
	customers, err := svc.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("ListCustomers failed: %v", err)
	}
	for i := range customers {
		if customers[i].Name == name {
			return &customers[i]
		}
	}
	t.Fatalf("customer %q not found in %+v", name, customers)
	return nil
}

func TestSales_BalanceAccumulates(t *testing.T) {
	svc, ctx := setupSalesTest(t)

	phone := "0321-9876543"
	_, err := svc.AddSale(ctx, core.DailySaleInput{
		Date:         "2026-08-01",
		CustomerName: "umar farooq",
		Phone:        &phone,
		SaleType:     core.SaleTypeOther,
		TotalAmount:  decimal.NewFromInt(2500),
		Paid:         decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("first AddSale failed: %v", err)
	}

	gasKg := decimal.NewFromFloat(11.8)
	sale, err := svc.AddSale(ctx, core.DailySaleInput{
		Date:         "2026-08-02",
		CustomerName: "Umar Farooq",
		SaleType:     core.SaleTypeGas,
		GasKg:        &gasKg,
		TotalAmount:  decimal.NewFromInt(3000),
		Paid:         decimal.NewFromInt(3000),
	})
	if err != nil {
		t.Fatalf("second AddSale failed: %v", err)
	}
	if !sale.Remaining.IsZero() {
		t.Errorf("fully paid sale remaining = %s, want 0", sale.Remaining)
	}

	// Both sales land on the same normalized customer.
	customer := customerByName(t, ctx, svc, "Umar Farooq")
	if !customer.Balance.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("balance = %s, want 1500", customer.Balance)
	}
	if customer.Phone == nil || *customer.Phone != phone {
		t.Errorf("phone = %v, want %q", customer.Phone, phone)
	}
}

func TestSales_DeleteReversesBalance(t *testing.T) {
	svc, ctx := setupSalesTest(t)

	sale, err := svc.AddSale(ctx, core.DailySaleInput{
		Date:         "2026-08-01",
		CustomerName: "Umar Farooq",
		SaleType:     core.SaleTypeOther,
		TotalAmount:  decimal.NewFromInt(2500),
		Paid:         decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("AddSale failed: %v", err)
	}

	if err := svc.DeleteSale(ctx, sale.ID); err != nil {
		t.Fatalf("DeleteSale failed: %v", err)
	}

	customer := customerByName(t, ctx, svc, "Umar Farooq")
	if !customer.Balance.IsZero() {
		t.Errorf("balance after delete = %s, want 0", customer.Balance)
	}

	// Second delete is a no-op and must not double-reverse.
	if err := svc.DeleteSale(ctx, sale.ID); err != nil {
		t.Fatalf("repeated DeleteSale = %v, want nil", err)
	}
	customer = customerByName(t, ctx, svc, "Umar Farooq")
	if !customer.Balance.IsZero() {
		t.Errorf("balance after repeated delete = %s, want 0", customer.Balance)
	}
}

func TestSales_OverpaymentGoesNegative(t *testing.T) {
	svc, ctx := setupSalesTest(t)

	// Customer pays off an old debt along with today's bill.
	sale, err := svc.AddSale(ctx, core.DailySaleInput{
		Date:         "2026-08-01",
		CustomerName: "Umar Farooq",
		SaleType:     core.SaleTypeOther,
		TotalAmount:  decimal.NewFromInt(1000),
		Paid:         decimal.NewFromInt(1500),
	})
	if err != nil {
		t.Fatalf("AddSale failed: %v", err)
	}
	if !sale.Remaining.Equal(decimal.NewFromInt(-500)) {
		t.Errorf("remaining = %s, want -500", sale.Remaining)
	}

	customer := customerByName(t, ctx, svc, "Umar Farooq")
	if !customer.Balance.Equal(decimal.NewFromInt(-500)) {
		t.Errorf("balance = %s, want -500", customer.Balance)
	}
}

func TestSales_DayOpeningUpsert(t *testing.T) {
	svc, ctx := setupSalesTest(t)

	if err := svc.SaveDayOpening(ctx, "2026-08-01", 55, decimal.NewFromInt(1200)); err != nil {
		t.Fatalf("SaveDayOpening failed: %v", err)
	}
	// Same date again replaces the snapshot instead of duplicating it.
	if err := svc.SaveDayOpening(ctx, "2026-08-01", 60, decimal.NewFromInt(1300)); err != nil {
		t.Fatalf("second SaveDayOpening failed: %v", err)
	}

	sheet, err := svc.GetDayOpening(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("GetDayOpening failed: %v", err)
	}
	if sheet == nil || sheet.TotalCylinders != 60 {
		t.Fatalf("sheet = %+v, want total_cylinders 60", sheet)
	}

	missing, err := svc.GetDayOpening(ctx, "2026-08-02")
	if err != nil {
		t.Fatalf("GetDayOpening for empty date failed: %v", err)
	}
	if missing != nil {
		t.Errorf("sheet for empty date = %+v, want nil", missing)
	}
}

func TestSales_ListByDate(t *testing.T) {
	svc, ctx := setupSalesTest(t)

	for _, date := range []string{"2026-08-01", "2026-08-01", "2026-08-02"} {
		_, err := svc.AddSale(ctx, core.DailySaleInput{
			Date:         date,
			CustomerName: "Umar Farooq",
			SaleType:     core.SaleTypeOther,
			TotalAmount:  decimal.NewFromInt(100),
			Paid:         decimal.NewFromInt(100),
		})
		if err != nil {
			t.Fatalf("AddSale(%s) failed: %v", date, err)
		}
	}

	sales, err := svc.ListSales(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("ListSales failed: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("sales on 2026-08-01 = %d, want 2", len(sales))
	}
	if sales[0].CustomerName != "Umar Farooq" {
		t.Errorf("joined customer name = %q", sales[0].CustomerName)
	}
}
