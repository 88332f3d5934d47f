package app

import (
	"context"

	"khata-backend/internal/core"
)

// ApplicationService is the single interface the web adapter calls. It
// accepts the untyped string values the form layer posts, parses them, and
// delegates to the core services. Implementations must contain no display
// logic of any kind.
type ApplicationService interface {
	// AuthenticateUser verifies credentials and returns a session on success.
	AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error)
	// GetUser returns the user profile by ID.
	GetUser(ctx context.Context, userID int) (*core.User, error)

	// Cylinder type catalog.
	ListCylinderTypes(ctx context.Context) ([]core.CylinderType, error)
	AddCylinderType(ctx context.Context, req CylinderTypeRequest) (*core.CylinderType, error)
	UpdateCylinderType(ctx context.Context, id string, req CylinderTypeRequest) error
	DeleteCylinderType(ctx context.Context, id string) error

	// Cylinder assignments. Assigning more than the unassigned stock fails
	// with core.ErrNotEnough before anything is written.
	ListAssignments(ctx context.Context, date string) ([]core.CylinderAssignment, error)
	AssignCylinders(ctx context.Context, req AssignRequest) error
	UpdateAssignment(ctx context.Context, id string, req UpdateAssignmentRequest) error
	DeleteAssignment(ctx context.Context, id string) error

	// Daily sales sheet.
	GetDailySheet(ctx context.Context, date string) (*DailySheetResult, error)
	SaveDayOpening(ctx context.Context, req DayOpeningRequest) error
	AddDailySale(ctx context.Context, req DailySaleRequest) (*core.DailySale, error)
	DeleteDailySale(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]core.Customer, error)

	// Salaries.
	ListSalaries(ctx context.Context, month string) ([]core.SalaryRecord, error)
	AddSalary(ctx context.Context, req SalaryRequest) (*core.SalaryRecord, error)
	UpdateSalary(ctx context.Context, id string, req SalaryUpdateRequest) error
	DeleteSalary(ctx context.Context, id string) error

	// Suppliers (flat bill totals on the supplier row).
	ListSuppliers(ctx context.Context) ([]core.Supplier, error)
	AddSupplier(ctx context.Context, req SupplierRequest) (*core.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, req SupplierRequest) error
	DeleteSupplier(ctx context.Context, id string) error

	// Clients and their item sub-ledger.
	ListClients(ctx context.Context) ([]core.Client, error)
	AddClient(ctx context.Context, req ClientRequest) (*core.Client, error)
	UpdateClient(ctx context.Context, id string, req ClientRequest) error
	DeleteClient(ctx context.Context, id string) error
	ListClientItems(ctx context.Context, clientID string) ([]core.ClientItem, error)
	AddClientItem(ctx context.Context, req ClientItemRequest) (*core.ClientItem, error)
	DeleteClientItem(ctx context.Context, id string) error

	// Vegetable catalog and per-date produce rows.
	ListVegetableNames(ctx context.Context) ([]core.VegetableName, error)
	AddVegetableName(ctx context.Context, req VegetableNameRequest) (*core.VegetableName, error)
	UpdateVegetableName(ctx context.Context, id string, req VegetableNameRequest) error
	DeleteVegetableName(ctx context.Context, id string) error
	ListVegetables(ctx context.Context, date string) ([]core.Vegetable, error)
	AddVegetable(ctx context.Context, req VegetableRequest) (*core.Vegetable, error)
	UpdateVegetable(ctx context.Context, id string, req VegetableUpdateRequest) error
	DeleteVegetable(ctx context.Context, id string) error

	// Chicken records.
	ListChickenRecords(ctx context.Context, date string) ([]core.ChickenRecord, error)
	AddChickenRecord(ctx context.Context, req ChickenRecordRequest) (*core.ChickenRecord, error)
	DeleteChickenRecord(ctx context.Context, id string) error

	// Reporting.
	DailyReport(ctx context.Context, date string) (*core.DailyReport, error)
	DashboardSummary(ctx context.Context, date string) (*core.DashboardSummary, error)
}
