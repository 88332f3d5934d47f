package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Party resolution by free-text name. Customers and employees are created
// implicitly the first time an unknown name is used on a sale or salary
// form, so both services share the same find-or-create contract:
//
//   - the name is trimmed and title-cased before both the lookup and the
//     insert, and matching is case-insensitive, so "ali " and "Ali"
//     resolve to the same row;
//   - a supplied phone number overwrites the stored one, but an empty
//     phone never blanks an existing number.
//
// Both run on the caller's transaction so party creation commits together
// with the ledger line that referenced it.

func findOrCreateCustomer(ctx context.Context, tx pgx.Tx, name string, phone *string) (int, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return 0, fmt.Errorf("customer name must not be empty")
	}

	var id int
	err := tx.QueryRow(ctx,
		`SELECT id FROM customers WHERE LOWER(name) = LOWER($1) LIMIT 1`,
		normalized,
	).Scan(&id)
	if err == nil {
		if phone != nil && *phone != "" {
			if _, err := tx.Exec(ctx,
				`UPDATE customers SET phone = $1, updated_at = NOW() WHERE id = $2`,
				*phone, id); err != nil {
				return 0, fmt.Errorf("update customer phone: %w", err)
			}
		}
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("look up customer %q: %w", normalized, err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO customers (name, phone, balance) VALUES ($1, $2, 0) RETURNING id`,
		normalized, phone,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create customer %q: %w", normalized, err)
	}
	return id, nil
}

func findOrCreateEmployee(ctx context.Context, tx pgx.Tx, name string, phone *string) (int, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return 0, fmt.Errorf("employee name must not be empty")
	}

	var id int
	err := tx.QueryRow(ctx,
		`SELECT id FROM employees WHERE LOWER(name) = LOWER($1) LIMIT 1`,
		normalized,
	).Scan(&id)
	if err == nil {
		if phone != nil && *phone != "" {
			if _, err := tx.Exec(ctx,
				`UPDATE employees SET phone = $1, updated_at = NOW() WHERE id = $2`,
				*phone, id); err != nil {
				return 0, fmt.Errorf("update employee phone: %w", err)
			}
		}
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("look up employee %q: %w", normalized, err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO employees (name, phone) VALUES ($1, $2) RETURNING id`,
		normalized, phone,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create employee %q: %w", normalized, err)
	}
	return id, nil
}
