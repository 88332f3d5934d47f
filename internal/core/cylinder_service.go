package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CylinderService manages the cylinder type catalog and client assignments.
// Every assignment mutation keeps the conservation invariant: a type's
// unassigned stock plus the sum of its live assignment quantities is
// constant, and the stock count never goes negative.
type CylinderService interface {
	ListTypes(ctx context.Context) ([]CylinderType, error)
	GetType(ctx context.Context, id int) (*CylinderType, error)
	AddType(ctx context.Context, input CylinderTypeInput) (*CylinderType, error)
	UpdateType(ctx context.Context, id int, input CylinderTypeInput) error
	DeleteType(ctx context.Context, id int) error

	// ListAssignments returns assignments with client and type names joined,
	// filtered to one date when date is non-empty.
	ListAssignments(ctx context.Context, date string) ([]CylinderAssignment, error)

	// Assign hands quantity cylinders of a type to a client on a date.
	// Stock is decremented with a conditional update; when the available
	// count is below quantity the call fails with ErrNotEnough and nothing
	// is written. A second assignment for the same (client, type, date)
	// merges into the existing row.
	Assign(ctx context.Context, clientID, typeID, quantity int, date string) error

	// UpdateAssignment re-validates only the positive part of the change:
	// increasing needs that much current stock, decreasing returns stock.
	UpdateAssignment(ctx context.Context, id, newQuantity int) error

	// DeleteAssignment returns the full quantity to stock. A missing
	// assignment or a since-deleted type degrades to a no-op.
	DeleteAssignment(ctx context.Context, id int) error
}

// CylinderTypeInput carries the editable fields of a cylinder type.
type CylinderTypeInput struct {
	Name          string
	WeightKg      decimal.Decimal
	CylinderPrice decimal.Decimal
	GasPrice      decimal.Decimal
	NoOfCylinders int
}

type cylinderService struct {
	pool *pgxpool.Pool
}

// NewCylinderService constructs a CylinderService backed by PostgreSQL.
func NewCylinderService(pool *pgxpool.Pool) CylinderService {
	return &cylinderService{pool: pool}
}

const cylinderTypeCols = `id, name, weight_kg, cylinder_price, gas_price, no_of_cylinders, created_at, updated_at`

func scanCylinderType(row pgx.Row) (*CylinderType, error) {
	t := &CylinderType{}
	err := row.Scan(&t.ID, &t.Name, &t.WeightKg, &t.CylinderPrice, &t.GasPrice,
		&t.NoOfCylinders, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *cylinderService) ListTypes(ctx context.Context) ([]CylinderType, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+cylinderTypeCols+` FROM cylinder_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cylinder types: %w", err)
	}
	defer rows.Close()

	var types []CylinderType
	for rows.Next() {
		t, err := scanCylinderType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cylinder type: %w", err)
		}
		types = append(types, *t)
	}
	return types, rows.Err()
}

func (s *cylinderService) GetType(ctx context.Context, id int) (*CylinderType, error) {
	t, err := scanCylinderType(s.pool.QueryRow(ctx,
		`SELECT `+cylinderTypeCols+` FROM cylinder_types WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cylinder type %d: %w", id, err)
	}
	return t, nil
}

func (s *cylinderService) AddType(ctx context.Context, input CylinderTypeInput) (*CylinderType, error) {
	name := TrimName(input.Name)
	if name == "" {
		return nil, fmt.Errorf("cylinder type name must not be empty")
	}

	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cylinder_types WHERE LOWER(name) = LOWER($1))`,
		name,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check cylinder type name: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	t, err := scanCylinderType(s.pool.QueryRow(ctx, `
		INSERT INTO cylinder_types (name, weight_kg, cylinder_price, gas_price, no_of_cylinders)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+cylinderTypeCols,
		name, input.WeightKg, input.CylinderPrice, input.GasPrice, input.NoOfCylinders))
	if err != nil {
		return nil, fmt.Errorf("insert cylinder type %q: %w", name, err)
	}
	return t, nil
}

func (s *cylinderService) UpdateType(ctx context.Context, id int, input CylinderTypeInput) error {
	name := TrimName(input.Name)
	if name == "" {
		return fmt.Errorf("cylinder type name must not be empty")
	}

	// The row being renamed is excluded, so changing only the casing of a
	// type's own name does not trip the duplicate check.
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cylinder_types WHERE LOWER(name) = LOWER($1) AND id <> $2)`,
		name, id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check cylinder type name: %w", err)
	}
	if exists {
		return ErrDuplicate
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE cylinder_types
		SET name = $1, weight_kg = $2, cylinder_price = $3, gas_price = $4,
		    no_of_cylinders = $5, updated_at = NOW()
		WHERE id = $6`,
		name, input.WeightKg, input.CylinderPrice, input.GasPrice, input.NoOfCylinders, id)
	if err != nil {
		return fmt.Errorf("update cylinder type %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *cylinderService) DeleteType(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM cylinder_types WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cylinder type %d: %w", id, err)
	}
	return nil
}

func (s *cylinderService) ListAssignments(ctx context.Context, date string) ([]CylinderAssignment, error) {
	query := `
		SELECT ca.id, ca.client_id, c.name, ca.cylinder_type_id, ct.name,
		       ca.quantity, ca.date::text, ca.created_at
		FROM cylinder_assignments ca
		JOIN clients c         ON c.id = ca.client_id
		JOIN cylinder_types ct ON ct.id = ca.cylinder_type_id`
	args := []any{}
	if date != "" {
		query += ` WHERE ca.date = $1`
		args = append(args, date)
	}
	query += ` ORDER BY ca.date DESC, c.name`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []CylinderAssignment
	for rows.Next() {
		var a CylinderAssignment
		if err := rows.Scan(&a.ID, &a.ClientID, &a.ClientName, &a.CylinderTypeID,
			&a.CylinderTypeName, &a.Quantity, &a.Date, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *cylinderService) Assign(ctx context.Context, clientID, typeID, quantity int, date string) error {
	if quantity < 1 {
		return fmt.Errorf("assignment quantity must be at least 1, got %d", quantity)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin assign: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conditional decrement: checking and taking the stock is one statement,
	// so two concurrent assigns cannot both pass on a stale read. Taking
	// exactly the remaining stock is allowed; one more is not.
	tag, err := tx.Exec(ctx, `
		UPDATE cylinder_types
		SET no_of_cylinders = no_of_cylinders - $1, updated_at = NOW()
		WHERE id = $2 AND no_of_cylinders >= $1`,
		quantity, typeID)
	if err != nil {
		return fmt.Errorf("deduct stock for type %d: %w", typeID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotEnough
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO cylinder_assignments (client_id, cylinder_type_id, quantity, date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id, cylinder_type_id, date)
		DO UPDATE SET quantity = cylinder_assignments.quantity + EXCLUDED.quantity`,
		clientID, typeID, quantity, date)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit assign: %w", err)
	}
	return nil
}

func (s *cylinderService) UpdateAssignment(ctx context.Context, id, newQuantity int) error {
	if newQuantity < 1 {
		return fmt.Errorf("assignment quantity must be at least 1, got %d", newQuantity)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin assignment update: %w", err)
	}
	defer tx.Rollback(ctx)

	var oldQuantity, typeID int
	err = tx.QueryRow(ctx,
		`SELECT quantity, cylinder_type_id FROM cylinder_assignments WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&oldQuantity, &typeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lock assignment %d: %w", id, err)
	}

	diff := newQuantity - oldQuantity
	if diff == 0 {
		return tx.Commit(ctx)
	}

	// A positive diff is validated against current stock, not the stock at
	// assign time; a negative diff returns cylinders unconditionally.
	tag, err := tx.Exec(ctx, `
		UPDATE cylinder_types
		SET no_of_cylinders = no_of_cylinders - $1, updated_at = NOW()
		WHERE id = $2 AND no_of_cylinders >= $1`,
		diff, typeID)
	if err != nil {
		return fmt.Errorf("adjust stock for type %d: %w", typeID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotEnough
	}

	_, err = tx.Exec(ctx,
		`UPDATE cylinder_assignments SET quantity = $1 WHERE id = $2`, newQuantity, id)
	if err != nil {
		return fmt.Errorf("update assignment %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit assignment update: %w", err)
	}
	return nil
}

func (s *cylinderService) DeleteAssignment(ctx context.Context, id int) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin assignment delete: %w", err)
	}
	defer tx.Rollback(ctx)

	var quantity, typeID int
	err = tx.QueryRow(ctx,
		`SELECT quantity, cylinder_type_id FROM cylinder_assignments WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&quantity, &typeID)
	if errors.Is(err, pgx.ErrNoRows) {
		// Already deleted by someone else; nothing to reconcile.
		return nil
	}
	if err != nil {
		return fmt.Errorf("lock assignment %d: %w", id, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cylinder_assignments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete assignment %d: %w", id, err)
	}

	// Return the cylinders. If the type itself is gone this updates zero
	// rows, which is fine: there is no pool left to return them to.
	_, err = tx.Exec(ctx, `
		UPDATE cylinder_types
		SET no_of_cylinders = no_of_cylinders + $1, updated_at = NOW()
		WHERE id = $2`,
		quantity, typeID)
	if err != nil {
		return fmt.Errorf("return stock for type %d: %w", typeID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit assignment delete: %w", err)
	}
	return nil
}
