package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SalaryService keeps one pay line per employee per month. Unlike daily
// sales there is no employee-level running balance: the remaining amount
// lives only on the salary row, and updating a row touches nothing else.
type SalaryService interface {
	// AddSalary resolves (or creates) the employee by name and upserts the
	// record for that month. Re-adding a month overwrites its amounts.
	AddSalary(ctx context.Context, input SalaryInput) (*SalaryRecord, error)

	// UpdateSalary recomputes remaining from the new amounts on the row
	// itself. A non-empty phone also updates the employee.
	UpdateSalary(ctx context.Context, id int, totalPay, paid decimal.Decimal, phone string) error

	DeleteSalary(ctx context.Context, id int) error

	// ListSalaries returns records with employee names joined, filtered to
	// one month ("2026-01") when month is non-empty.
	ListSalaries(ctx context.Context, month string) ([]SalaryRecord, error)
}

// SalaryInput carries one month's pay as entered on the salary form.
type SalaryInput struct {
	EmployeeName string
	Phone        *string
	Month        string
	TotalPay     decimal.Decimal
	Paid         decimal.Decimal
}

type salaryService struct {
	pool *pgxpool.Pool
}

// NewSalaryService constructs a SalaryService backed by PostgreSQL.
func NewSalaryService(pool *pgxpool.Pool) SalaryService {
	return &salaryService{pool: pool}
}

func (s *salaryService) AddSalary(ctx context.Context, input SalaryInput) (*SalaryRecord, error) {
	if input.Month == "" {
		return nil, fmt.Errorf("salary month must not be empty")
	}
	remaining := input.TotalPay.Sub(input.Paid)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin add salary: %w", err)
	}
	defer tx.Rollback(ctx)

	employeeID, err := findOrCreateEmployee(ctx, tx, input.EmployeeName, input.Phone)
	if err != nil {
		return nil, err
	}

	rec := &SalaryRecord{}
	err = tx.QueryRow(ctx, `
		INSERT INTO salary_records (employee_id, month, total_pay, paid, remaining)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, month)
		DO UPDATE SET total_pay = EXCLUDED.total_pay, paid = EXCLUDED.paid,
		              remaining = EXCLUDED.remaining, updated_at = NOW()
		RETURNING id, employee_id, month, total_pay, paid, remaining, created_at, updated_at`,
		employeeID, input.Month, input.TotalPay, input.Paid, remaining,
	).Scan(&rec.ID, &rec.EmployeeID, &rec.Month, &rec.TotalPay, &rec.Paid,
		&rec.Remaining, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert salary record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit add salary: %w", err)
	}
	return rec, nil
}

func (s *salaryService) UpdateSalary(ctx context.Context, id int, totalPay, paid decimal.Decimal, phone string) error {
	remaining := totalPay.Sub(paid)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin salary update: %w", err)
	}
	defer tx.Rollback(ctx)

	if phone != "" {
		_, err = tx.Exec(ctx, `
			UPDATE employees SET phone = $1, updated_at = NOW()
			WHERE id = (SELECT employee_id FROM salary_records WHERE id = $2)`,
			phone, id)
		if err != nil {
			return fmt.Errorf("update employee phone: %w", err)
		}
	}

	// A vanished record is tolerated; the update simply affects no rows.
	_, err = tx.Exec(ctx, `
		UPDATE salary_records
		SET total_pay = $1, paid = $2, remaining = $3, updated_at = NOW()
		WHERE id = $4`,
		totalPay, paid, remaining, id)
	if err != nil {
		return fmt.Errorf("update salary record %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit salary update: %w", err)
	}
	return nil
}

func (s *salaryService) DeleteSalary(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM salary_records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete salary record %d: %w", id, err)
	}
	return nil
}

func (s *salaryService) ListSalaries(ctx context.Context, month string) ([]SalaryRecord, error) {
	query := `
		SELECT sr.id, sr.employee_id, e.name, e.phone, sr.month,
		       sr.total_pay, sr.paid, sr.remaining, sr.created_at, sr.updated_at
		FROM salary_records sr
		JOIN employees e ON e.id = sr.employee_id`
	args := []any{}
	if month != "" {
		query += ` WHERE sr.month = $1`
		args = append(args, month)
	}
	query += ` ORDER BY sr.month DESC, e.name`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list salary records: %w", err)
	}
	defer rows.Close()

	var records []SalaryRecord
	for rows.Next() {
		var rec SalaryRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeePhone,
			&rec.Month, &rec.TotalPay, &rec.Paid, &rec.Remaining,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan salary record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
