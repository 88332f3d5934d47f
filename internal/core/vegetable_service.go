package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// VegetableService manages the vegetable name catalog and the per-date
// produce rows. Each row tracks its own bought/sold quantities; remaining
// is qty_bought - qty_sold. Unlike cylinders, the service does not reject a
// qty_sold above the remaining stock; the entry screens hint at the limit
// but the engine accepts what it is given.
type VegetableService interface {
	ListNames(ctx context.Context) ([]VegetableName, error)
	AddName(ctx context.Context, name, unit string) (*VegetableName, error)
	UpdateName(ctx context.Context, id int, name, unit string) error
	DeleteName(ctx context.Context, id int) error

	AddVegetable(ctx context.Context, date, name string, qtyBought, priceBought decimal.Decimal) (*Vegetable, error)
	UpdateVegetable(ctx context.Context, id int, qtySold, priceSold decimal.Decimal) error
	DeleteVegetable(ctx context.Context, id int) error
	ListByDate(ctx context.Context, date string) ([]Vegetable, error)
}

type vegetableService struct {
	pool *pgxpool.Pool
}

// NewVegetableService constructs a VegetableService backed by PostgreSQL.
func NewVegetableService(pool *pgxpool.Pool) VegetableService {
	return &vegetableService{pool: pool}
}

func (s *vegetableService) ListNames(ctx context.Context) ([]VegetableName, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, unit, created_at FROM vegetable_names ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list vegetable names: %w", err)
	}
	defer rows.Close()

	var names []VegetableName
	for rows.Next() {
		var n VegetableName
		if err := rows.Scan(&n.ID, &n.Name, &n.Unit, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vegetable name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (s *vegetableService) nameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM vegetable_names WHERE LOWER(name) = LOWER($1) AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check vegetable name: %w", err)
	}
	return exists, nil
}

func (s *vegetableService) AddName(ctx context.Context, name, unit string) (*VegetableName, error) {
	name = TrimName(name)
	if name == "" {
		return nil, fmt.Errorf("vegetable name must not be empty")
	}
	if unit == "" {
		unit = "kg"
	}

	taken, err := s.nameTaken(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicate
	}

	n := &VegetableName{}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO vegetable_names (name, unit) VALUES ($1, $2)
		RETURNING id, name, unit, created_at`,
		name, unit,
	).Scan(&n.ID, &n.Name, &n.Unit, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert vegetable name %q: %w", name, err)
	}
	return n, nil
}

func (s *vegetableService) UpdateName(ctx context.Context, id int, name, unit string) error {
	name = TrimName(name)
	if name == "" {
		return fmt.Errorf("vegetable name must not be empty")
	}
	if unit == "" {
		unit = "kg"
	}

	taken, err := s.nameTaken(ctx, name, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE vegetable_names SET name = $1, unit = $2 WHERE id = $3`,
		name, unit, id)
	if err != nil {
		return fmt.Errorf("update vegetable name %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *vegetableService) DeleteName(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM vegetable_names WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete vegetable name %d: %w", id, err)
	}
	return nil
}

func (s *vegetableService) AddVegetable(ctx context.Context, date, name string, qtyBought, priceBought decimal.Decimal) (*Vegetable, error) {
	name = TrimName(name)
	if name == "" {
		return nil, fmt.Errorf("vegetable name must not be empty")
	}

	v := &Vegetable{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO vegetables (name, qty_bought, price_bought, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, qty_bought, qty_sold, price_bought, price_sold, date::text, created_at`,
		name, qtyBought, priceBought, date,
	).Scan(&v.ID, &v.Name, &v.QtyBought, &v.QtySold, &v.PriceBought, &v.PriceSold, &v.Date, &v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert vegetable %q: %w", name, err)
	}
	return v, nil
}

func (s *vegetableService) UpdateVegetable(ctx context.Context, id int, qtySold, priceSold decimal.Decimal) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE vegetables SET qty_sold = $1, price_sold = $2 WHERE id = $3`,
		qtySold, priceSold, id)
	if err != nil {
		return fmt.Errorf("update vegetable %d: %w", id, err)
	}
	return nil
}

func (s *vegetableService) DeleteVegetable(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM vegetables WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete vegetable %d: %w", id, err)
	}
	return nil
}

func (s *vegetableService) ListByDate(ctx context.Context, date string) ([]Vegetable, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, qty_bought, qty_sold, price_bought, price_sold, date::text, created_at
		FROM vegetables
		WHERE date = $1
		ORDER BY name`,
		date)
	if err != nil {
		return nil, fmt.Errorf("list vegetables: %w", err)
	}
	defer rows.Close()

	var vegetables []Vegetable
	for rows.Next() {
		var v Vegetable
		if err := rows.Scan(&v.ID, &v.Name, &v.QtyBought, &v.QtySold,
			&v.PriceBought, &v.PriceSold, &v.Date, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vegetable: %w", err)
		}
		vegetables = append(vegetables, v)
	}
	return vegetables, rows.Err()
}
