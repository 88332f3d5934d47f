package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SupplierService is the flat-ledger variant: a supplier row stores
// total_bill, paid and remaining directly, with no line history behind
// them. AddSupplier is an upsert keyed by the normalized name, so entering
// "ahmed" when "Ahmed" exists overwrites that row instead of creating a
// second supplier. This shape is deliberately not unified with the
// line-history ledgers (daily sales, salaries).
type SupplierService interface {
	AddSupplier(ctx context.Context, input SupplierInput) (*Supplier, error)
	UpdateSupplier(ctx context.Context, id int, input SupplierInput) error
	DeleteSupplier(ctx context.Context, id int) error
	ListSuppliers(ctx context.Context) ([]Supplier, error)
}

// SupplierInput carries the supplier bill fields. Phone is written as
// given, including nil, since the supplier screens always post the full row.
type SupplierInput struct {
	Name      string
	Phone     *string
	TotalBill decimal.Decimal
	Paid      decimal.Decimal
}

type supplierService struct {
	pool *pgxpool.Pool
}

// NewSupplierService constructs a SupplierService backed by PostgreSQL.
func NewSupplierService(pool *pgxpool.Pool) SupplierService {
	return &supplierService{pool: pool}
}

const supplierCols = `id, name, phone, total_bill, paid, remaining, created_at, updated_at`

func scanSupplier(row pgx.Row) (*Supplier, error) {
	sup := &Supplier{}
	err := row.Scan(&sup.ID, &sup.Name, &sup.Phone, &sup.TotalBill, &sup.Paid,
		&sup.Remaining, &sup.CreatedAt, &sup.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *supplierService) AddSupplier(ctx context.Context, input SupplierInput) (*Supplier, error) {
	name := NormalizeName(input.Name)
	if name == "" {
		return nil, fmt.Errorf("supplier name must not be empty")
	}
	remaining := input.TotalBill.Sub(input.Paid)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin add supplier: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx,
		`SELECT id FROM suppliers WHERE LOWER(name) = LOWER($1) LIMIT 1 FOR UPDATE`,
		name,
	).Scan(&id)
	switch {
	case err == nil:
		sup, err := scanSupplier(tx.QueryRow(ctx, `
			UPDATE suppliers
			SET phone = $1, total_bill = $2, paid = $3, remaining = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING `+supplierCols,
			input.Phone, input.TotalBill, input.Paid, remaining, id))
		if err != nil {
			return nil, fmt.Errorf("update supplier %q: %w", name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("commit add supplier: %w", err)
		}
		return sup, nil
	case errors.Is(err, pgx.ErrNoRows):
		sup, err := scanSupplier(tx.QueryRow(ctx, `
			INSERT INTO suppliers (name, phone, total_bill, paid, remaining)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+supplierCols,
			name, input.Phone, input.TotalBill, input.Paid, remaining))
		if err != nil {
			return nil, fmt.Errorf("insert supplier %q: %w", name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("commit add supplier: %w", err)
		}
		return sup, nil
	default:
		return nil, fmt.Errorf("look up supplier %q: %w", name, err)
	}
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id int, input SupplierInput) error {
	remaining := input.TotalBill.Sub(input.Paid)
	_, err := s.pool.Exec(ctx, `
		UPDATE suppliers
		SET phone = $1, total_bill = $2, paid = $3, remaining = $4, updated_at = NOW()
		WHERE id = $5`,
		input.Phone, input.TotalBill, input.Paid, remaining, id)
	if err != nil {
		return fmt.Errorf("update supplier %d: %w", id, err)
	}
	return nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	return nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+supplierCols+` FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		sup, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, *sup)
	}
	return suppliers, rows.Err()
}
