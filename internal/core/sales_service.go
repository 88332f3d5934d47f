package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SalesService records daily sales against customers and keeps each
// customer's running balance equal to the sum of the remaining amounts of
// that customer's live sales. The balance is adjusted incrementally (add
// the line's remaining on insert, subtract the stored remaining on delete),
// never recomputed from scratch.
type SalesService interface {
	// SaveDayOpening upserts the informational opening snapshot for a date.
	SaveDayOpening(ctx context.Context, date string, totalCylinders int, totalGasKg decimal.Decimal) error
	GetDayOpening(ctx context.Context, date string) (*DailySaleSheet, error)

	// AddSale resolves (or creates) the customer by name, inserts the sale
	// and accumulates remaining = total - paid onto the customer balance,
	// all in one transaction. paid > total is accepted and produces a
	// negative remaining (the customer is in credit).
	AddSale(ctx context.Context, input DailySaleInput) (*DailySale, error)

	// DeleteSale reverses exactly the stored remaining of the deleted line
	// from the customer balance. A missing sale is a no-op.
	DeleteSale(ctx context.Context, id int) error

	ListSales(ctx context.Context, date string) ([]DailySale, error)
	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id int) (*Customer, error)
}

// DailySaleInput carries one sale as entered on the daily sheet.
type DailySaleInput struct {
	Date         string
	CustomerName string
	Phone        *string
	SaleType     SaleType
	GasKg        *decimal.Decimal
	TotalAmount  decimal.Decimal
	Paid         decimal.Decimal
}

type salesService struct {
	pool *pgxpool.Pool
}

// NewSalesService constructs a SalesService backed by PostgreSQL.
func NewSalesService(pool *pgxpool.Pool) SalesService {
	return &salesService{pool: pool}
}

func (s *salesService) SaveDayOpening(ctx context.Context, date string, totalCylinders int, totalGasKg decimal.Decimal) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO daily_sale_sheets (date, total_cylinders, total_gas_kg)
		VALUES ($1, $2, $3)
		ON CONFLICT (date)
		DO UPDATE SET total_cylinders = EXCLUDED.total_cylinders,
		              total_gas_kg    = EXCLUDED.total_gas_kg`,
		date, totalCylinders, totalGasKg)
	if err != nil {
		return fmt.Errorf("save day opening for %s: %w", date, err)
	}
	return nil
}

func (s *salesService) GetDayOpening(ctx context.Context, date string) (*DailySaleSheet, error) {
	sheet := &DailySaleSheet{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, date::text, total_cylinders, total_gas_kg, created_at
		FROM daily_sale_sheets
		WHERE date = $1`,
		date,
	).Scan(&sheet.ID, &sheet.Date, &sheet.TotalCylinders, &sheet.TotalGasKg, &sheet.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get day opening for %s: %w", date, err)
	}
	return sheet, nil
}

func (s *salesService) AddSale(ctx context.Context, input DailySaleInput) (*DailySale, error) {
	saleType := input.SaleType
	if saleType == "" {
		saleType = SaleTypeOther
	}
	// gas_kg only carries meaning on gas sales.
	gasKg := input.GasKg
	if saleType != SaleTypeGas {
		gasKg = nil
	}
	remaining := input.TotalAmount.Sub(input.Paid)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin add sale: %w", err)
	}
	defer tx.Rollback(ctx)

	customerID, err := findOrCreateCustomer(ctx, tx, input.CustomerName, input.Phone)
	if err != nil {
		return nil, err
	}

	// Single-statement accumulate: no read-then-write on the balance.
	_, err = tx.Exec(ctx,
		`UPDATE customers SET balance = balance + $1, updated_at = NOW() WHERE id = $2`,
		remaining, customerID)
	if err != nil {
		return nil, fmt.Errorf("accumulate customer balance: %w", err)
	}

	sale := &DailySale{}
	err = tx.QueryRow(ctx, `
		INSERT INTO daily_sales (date, customer_id, sale_type, gas_kg, total_amount, paid, remaining)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date::text, customer_id, sale_type, gas_kg, total_amount, paid, remaining, created_at`,
		input.Date, customerID, saleType, gasKg, input.TotalAmount, input.Paid, remaining,
	).Scan(&sale.ID, &sale.Date, &sale.CustomerID, &sale.SaleType, &sale.GasKg,
		&sale.TotalAmount, &sale.Paid, &sale.Remaining, &sale.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert daily sale: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit add sale: %w", err)
	}
	return sale, nil
}

func (s *salesService) DeleteSale(ctx context.Context, id int) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete sale: %w", err)
	}
	defer tx.Rollback(ctx)

	var customerID int
	var remaining decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT customer_id, remaining FROM daily_sales WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&customerID, &remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lock daily sale %d: %w", id, err)
	}

	// Reverse the stored remaining, not a recomputation; other lines for
	// this customer may have changed since the sale was recorded.
	_, err = tx.Exec(ctx,
		`UPDATE customers SET balance = balance - $1, updated_at = NOW() WHERE id = $2`,
		remaining, customerID)
	if err != nil {
		return fmt.Errorf("reverse customer balance: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM daily_sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete daily sale %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete sale: %w", err)
	}
	return nil
}

func (s *salesService) ListSales(ctx context.Context, date string) ([]DailySale, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT ds.id, ds.date::text, ds.customer_id, c.name, c.phone, ds.sale_type,
		       ds.gas_kg, ds.total_amount, ds.paid, ds.remaining, ds.created_at
		FROM daily_sales ds
		JOIN customers c ON c.id = ds.customer_id
		WHERE ds.date = $1
		ORDER BY ds.created_at`,
		date)
	if err != nil {
		return nil, fmt.Errorf("list daily sales: %w", err)
	}
	defer rows.Close()

	var sales []DailySale
	for rows.Next() {
		var sale DailySale
		if err := rows.Scan(&sale.ID, &sale.Date, &sale.CustomerID, &sale.CustomerName,
			&sale.CustomerPhone, &sale.SaleType, &sale.GasKg, &sale.TotalAmount,
			&sale.Paid, &sale.Remaining, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan daily sale: %w", err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

func (s *salesService) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, phone, balance, created_at, updated_at
		FROM customers
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Balance, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *salesService) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	c := &Customer{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, phone, balance, created_at, updated_at
		FROM customers
		WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Balance, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}
