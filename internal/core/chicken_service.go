package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ChickenService records bought/sold chicken lines per date. A sold line is
// validated against the day's remaining quantity and weight (bought minus
// already sold), the one stock check on this ledger.
type ChickenService interface {
	AddRecord(ctx context.Context, input ChickenRecordInput) (*ChickenRecord, error)
	DeleteRecord(ctx context.Context, id int) error
	ListByDate(ctx context.Context, date string) ([]ChickenRecord, error)
}

type ChickenRecordInput struct {
	Date     string
	Type     ChickenRecordType
	Quantity int
	WeightKg decimal.Decimal
	Price    decimal.Decimal
}

type chickenService struct {
	pool *pgxpool.Pool
}

// NewChickenService constructs a ChickenService backed by PostgreSQL.
func NewChickenService(pool *pgxpool.Pool) ChickenService {
	return &chickenService{pool: pool}
}

func (s *chickenService) AddRecord(ctx context.Context, input ChickenRecordInput) (*ChickenRecord, error) {
	if input.Type != ChickenBought && input.Type != ChickenSold {
		return nil, fmt.Errorf("chicken record type must be bought or sold, got %q", input.Type)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin add chicken record: %w", err)
	}
	defer tx.Rollback(ctx)

	if input.Type == ChickenSold {
		var remainingQty int
		var remainingWeight decimal.Decimal
		err := tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(CASE WHEN type = 'bought' THEN quantity  ELSE -quantity  END), 0),
			       COALESCE(SUM(CASE WHEN type = 'bought' THEN weight_kg ELSE -weight_kg END), 0)
			FROM chicken_records
			WHERE date = $1`,
			input.Date,
		).Scan(&remainingQty, &remainingWeight)
		if err != nil {
			return nil, fmt.Errorf("aggregate chicken stock for %s: %w", input.Date, err)
		}
		if input.Quantity > remainingQty || input.WeightKg.GreaterThan(remainingWeight) {
			return nil, fmt.Errorf("sold exceeds remaining chicken stock for %s: %w", input.Date, ErrNotEnough)
		}
	}

	rec := &ChickenRecord{}
	err = tx.QueryRow(ctx, `
		INSERT INTO chicken_records (type, quantity, weight_kg, price, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, type, quantity, weight_kg, price, date::text, created_at`,
		input.Type, input.Quantity, input.WeightKg, input.Price, input.Date,
	).Scan(&rec.ID, &rec.Type, &rec.Quantity, &rec.WeightKg, &rec.Price, &rec.Date, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert chicken record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit add chicken record: %w", err)
	}
	return rec, nil
}

func (s *chickenService) DeleteRecord(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM chicken_records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete chicken record %d: %w", id, err)
	}
	return nil
}

func (s *chickenService) ListByDate(ctx context.Context, date string) ([]ChickenRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, type, quantity, weight_kg, price, date::text, created_at
		FROM chicken_records
		WHERE date = $1
		ORDER BY created_at`,
		date)
	if err != nil {
		return nil, fmt.Errorf("list chicken records: %w", err)
	}
	defer rows.Close()

	var records []ChickenRecord
	for rows.Next() {
		var rec ChickenRecord
		if err := rows.Scan(&rec.ID, &rec.Type, &rec.Quantity, &rec.WeightKg,
			&rec.Price, &rec.Date, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chicken record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
