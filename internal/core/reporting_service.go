package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// DailyReport collects everything the report screen shows for one date.
type DailyReport struct {
	Date           string          `json:"date"`
	Vegetables     []Vegetable     `json:"vegetables"`
	ChickenRecords []ChickenRecord `json:"chicken_records"`
	ClientItems    []ClientItem    `json:"client_items"`
	VegetableNames []VegetableName `json:"vegetable_names"`
}

// DashboardSummary is the landing-page snapshot: the day's assignments,
// current cylinder stock, and the day's produce totals.
type DashboardSummary struct {
	Date            string               `json:"date"`
	Assignments     []CylinderAssignment `json:"assignments"`
	CylinderTypes   []CylinderType       `json:"cylinder_types"`
	AvailableTotal  int                  `json:"available_total"`
	AssignedTotal   int                  `json:"assigned_total"`
	VegetableBought decimal.Decimal      `json:"vegetable_bought"`
	VegetableSold   decimal.Decimal      `json:"vegetable_sold"`
	ChickenBoughtKg decimal.Decimal      `json:"chicken_bought_kg"`
	ChickenSoldKg   decimal.Decimal      `json:"chicken_sold_kg"`
}

// ReportingService produces read-only views over the ledgers.
type ReportingService interface {
	DailyReport(ctx context.Context, date string) (*DailyReport, error)
	DashboardSummary(ctx context.Context, date string) (*DashboardSummary, error)
}

type reportingService struct {
	pool      *pgxpool.Pool
	cylinders CylinderService
	clients   ClientService
	veg       VegetableService
	chicken   ChickenService
}

// NewReportingService constructs a ReportingService that reads through the
// entity services for row lists and the pool for aggregate totals.
func NewReportingService(pool *pgxpool.Pool, cylinders CylinderService, clients ClientService,
	veg VegetableService, chicken ChickenService) ReportingService {
	return &reportingService{pool: pool, cylinders: cylinders, clients: clients, veg: veg, chicken: chicken}
}

func (s *reportingService) DailyReport(ctx context.Context, date string) (*DailyReport, error) {
	vegetables, err := s.veg.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	chickenRecords, err := s.chicken.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	clientItems, err := s.clients.ListItemsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	vegetableNames, err := s.veg.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	return &DailyReport{
		Date:           date,
		Vegetables:     vegetables,
		ChickenRecords: chickenRecords,
		ClientItems:    clientItems,
		VegetableNames: vegetableNames,
	}, nil
}

func (s *reportingService) DashboardSummary(ctx context.Context, date string) (*DashboardSummary, error) {
	assignments, err := s.cylinders.ListAssignments(ctx, date)
	if err != nil {
		return nil, err
	}
	types, err := s.cylinders.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Date:          date,
		Assignments:   assignments,
		CylinderTypes: types,
	}
	for _, t := range types {
		summary.AvailableTotal += t.NoOfCylinders
	}

	// Live assignments across all dates, so the conservation of the whole
	// fleet (available + assigned) is visible at a glance.
	err = s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM cylinder_assignments`,
	).Scan(&summary.AssignedTotal)
	if err != nil {
		return nil, fmt.Errorf("sum assigned cylinders: %w", err)
	}

	err = s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(price_bought), 0),
		       COALESCE(SUM(price_sold), 0)
		FROM vegetables
		WHERE date = $1`,
		date,
	).Scan(&summary.VegetableBought, &summary.VegetableSold)
	if err != nil {
		return nil, fmt.Errorf("sum vegetable totals: %w", err)
	}

	err = s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN type = 'bought' THEN weight_kg ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN type = 'sold'   THEN weight_kg ELSE 0 END), 0)
		FROM chicken_records
		WHERE date = $1`,
		date,
	).Scan(&summary.ChickenBoughtKg, &summary.ChickenSoldKg)
	if err != nil {
		return nil, fmt.Errorf("sum chicken totals: %w", err)
	}

	return summary, nil
}
