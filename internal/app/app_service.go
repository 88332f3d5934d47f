package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"khata-backend/internal/core"
)

// ErrBadCredentials is returned by AuthenticateUser for an unknown username
// or a wrong password. The two cases are deliberately indistinguishable.
var ErrBadCredentials = errors.New("invalid username or password")

type appService struct {
	users     core.UserService
	cylinders core.CylinderService
	sales     core.SalesService
	salaries  core.SalaryService
	suppliers core.SupplierService
	clients   core.ClientService
	veg       core.VegetableService
	chicken   core.ChickenService
	reports   core.ReportingService
}

// Services bundles the core services the application layer dispatches to.
type Services struct {
	Users     core.UserService
	Cylinders core.CylinderService
	Sales     core.SalesService
	Salaries  core.SalaryService
	Suppliers core.SupplierService
	Clients   core.ClientService
	Veg       core.VegetableService
	Chicken   core.ChickenService
	Reports   core.ReportingService
}

// NewApplicationService wires the core services behind the dispatch facade.
func NewApplicationService(s Services) ApplicationService {
	return &appService{
		users:     s.Users,
		cylinders: s.Cylinders,
		sales:     s.Sales,
		salaries:  s.Salaries,
		suppliers: s.Suppliers,
		clients:   s.Clients,
		veg:       s.Veg,
		chicken:   s.Chicken,
		reports:   s.Reports,
	}
}

func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrBadCredentials
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	hash := core.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash)) != 1 {
		return nil, ErrBadCredentials
	}
	return &UserSession{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	}, nil
}

func (s *appService) GetUser(ctx context.Context, userID int) (*core.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *appService) ListCylinderTypes(ctx context.Context) ([]core.CylinderType, error) {
	return s.cylinders.ListTypes(ctx)
}

func (s *appService) AddCylinderType(ctx context.Context, req CylinderTypeRequest) (*core.CylinderType, error) {
	input, err := parseCylinderType(req)
	if err != nil {
		return nil, err
	}
	return s.cylinders.AddType(ctx, input)
}

func (s *appService) UpdateCylinderType(ctx context.Context, id string, req CylinderTypeRequest) error {
	typeID, err := parseID("cylinder type id", id)
	if err != nil {
		return err
	}
	input, err := parseCylinderType(req)
	if err != nil {
		return err
	}
	return s.cylinders.UpdateType(ctx, typeID, input)
}

func (s *appService) DeleteCylinderType(ctx context.Context, id string) error {
	typeID, err := parseID("cylinder type id", id)
	if err != nil {
		return err
	}
	return s.cylinders.DeleteType(ctx, typeID)
}

func parseCylinderType(req CylinderTypeRequest) (core.CylinderTypeInput, error) {
	var input core.CylinderTypeInput
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return input, fmt.Errorf("%w: cylinder type name is required", ErrInvalidInput)
	}
	weight, err := parseAmount("weight_kg", req.WeightKg)
	if err != nil {
		return input, err
	}
	cylinderPrice, err := parseAmount("cylinder_price", req.CylinderPrice)
	if err != nil {
		return input, err
	}
	gasPrice, err := parseAmount("gas_price", req.GasPrice)
	if err != nil {
		return input, err
	}
	count := 0
	if strings.TrimSpace(req.NoOfCylinders) != "" {
		if count, err = parseCount("no_of_cylinders", req.NoOfCylinders); err != nil {
			return input, err
		}
	}
	if count < 0 {
		return input, fmt.Errorf("%w: no_of_cylinders must not be negative", ErrInvalidInput)
	}
	input = core.CylinderTypeInput{
		Name:          name,
		WeightKg:      weight,
		CylinderPrice: cylinderPrice,
		GasPrice:      gasPrice,
		NoOfCylinders: count,
	}
	return input, nil
}

func (s *appService) ListAssignments(ctx context.Context, date string) ([]core.CylinderAssignment, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	return s.cylinders.ListAssignments(ctx, day)
}

func (s *appService) AssignCylinders(ctx context.Context, req AssignRequest) error {
	clientID, err := parseID("client_id", req.ClientID)
	if err != nil {
		return err
	}
	typeID, err := parseID("cylinder_type_id", req.CylinderTypeID)
	if err != nil {
		return err
	}
	qty, err := parseCount("quantity", req.Quantity)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	day, err := parseDate(req.Date)
	if err != nil {
		return err
	}
	return s.cylinders.Assign(ctx, clientID, typeID, qty, day)
}

func (s *appService) UpdateAssignment(ctx context.Context, id string, req UpdateAssignmentRequest) error {
	assignmentID, err := parseID("assignment id", id)
	if err != nil {
		return err
	}
	qty, err := parseCount("quantity", req.Quantity)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	return s.cylinders.UpdateAssignment(ctx, assignmentID, qty)
}

func (s *appService) DeleteAssignment(ctx context.Context, id string) error {
	assignmentID, err := parseID("assignment id", id)
	if err != nil {
		return err
	}
	return s.cylinders.DeleteAssignment(ctx, assignmentID)
}

func (s *appService) GetDailySheet(ctx context.Context, date string) (*DailySheetResult, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	sheet, err := s.sales.GetDayOpening(ctx, day)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.ListSales(ctx, day)
	if err != nil {
		return nil, err
	}
	return &DailySheetResult{Sheet: sheet, Sales: sales}, nil
}

func (s *appService) SaveDayOpening(ctx context.Context, req DayOpeningRequest) error {
	day, err := parseDate(req.Date)
	if err != nil {
		return err
	}
	cylinders := 0
	if strings.TrimSpace(req.TotalCylinders) != "" {
		if cylinders, err = parseCount("total_cylinders", req.TotalCylinders); err != nil {
			return err
		}
	}
	gasKg, err := parseAmount("total_gas_kg", req.TotalGasKg)
	if err != nil {
		return err
	}
	return s.sales.SaveDayOpening(ctx, day, cylinders, gasKg)
}

func (s *appService) AddDailySale(ctx context.Context, req DailySaleRequest) (*core.DailySale, error) {
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	saleType := core.SaleTypeOther
	switch strings.TrimSpace(req.SaleType) {
	case "", string(core.SaleTypeOther):
	case string(core.SaleTypeGas):
		saleType = core.SaleTypeGas
	default:
		return nil, fmt.Errorf("%w: sale_type %q", ErrInvalidInput, req.SaleType)
	}
	input := core.DailySaleInput{
		Date:         day,
		CustomerName: name,
		Phone:        optString(req.Phone),
		SaleType:     saleType,
	}
	if saleType == core.SaleTypeGas {
		gasKg, err := parseAmount("gas_kg", req.GasKg)
		if err != nil {
			return nil, err
		}
		input.GasKg = &gasKg
	}
	if input.TotalAmount, err = parseAmount("total_amount", req.TotalAmount); err != nil {
		return nil, err
	}
	if input.Paid, err = parseAmount("paid", req.Paid); err != nil {
		return nil, err
	}
	return s.sales.AddSale(ctx, input)
}

func (s *appService) DeleteDailySale(ctx context.Context, id string) error {
	saleID, err := parseID("sale id", id)
	if err != nil {
		return err
	}
	return s.sales.DeleteSale(ctx, saleID)
}

func (s *appService) ListCustomers(ctx context.Context) ([]core.Customer, error) {
	return s.sales.ListCustomers(ctx)
}

func (s *appService) ListSalaries(ctx context.Context, month string) ([]core.SalaryRecord, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}
	return s.salaries.ListSalaries(ctx, m)
}

func (s *appService) AddSalary(ctx context.Context, req SalaryRequest) (*core.SalaryRecord, error) {
	name := strings.TrimSpace(req.EmployeeName)
	if name == "" {
		return nil, fmt.Errorf("%w: employee_name is required", ErrInvalidInput)
	}
	month, err := parseMonth(req.Month)
	if err != nil {
		return nil, err
	}
	totalPay, err := parseAmount("total_pay", req.TotalPay)
	if err != nil {
		return nil, err
	}
	paid, err := parseAmount("paid", req.Paid)
	if err != nil {
		return nil, err
	}
	return s.salaries.AddSalary(ctx, core.SalaryInput{
		EmployeeName: name,
		Phone:        optString(req.Phone),
		Month:        month,
		TotalPay:     totalPay,
		Paid:         paid,
	})
}

func (s *appService) UpdateSalary(ctx context.Context, id string, req SalaryUpdateRequest) error {
	recordID, err := parseID("salary id", id)
	if err != nil {
		return err
	}
	totalPay, err := parseAmount("total_pay", req.TotalPay)
	if err != nil {
		return err
	}
	paid, err := parseAmount("paid", req.Paid)
	if err != nil {
		return err
	}
	return s.salaries.UpdateSalary(ctx, recordID, totalPay, paid, strings.TrimSpace(req.Phone))
}

func (s *appService) DeleteSalary(ctx context.Context, id string) error {
	recordID, err := parseID("salary id", id)
	if err != nil {
		return err
	}
	return s.salaries.DeleteSalary(ctx, recordID)
}

func (s *appService) ListSuppliers(ctx context.Context) ([]core.Supplier, error) {
	return s.suppliers.ListSuppliers(ctx)
}

func (s *appService) AddSupplier(ctx context.Context, req SupplierRequest) (*core.Supplier, error) {
	input, err := parseSupplier(req)
	if err != nil {
		return nil, err
	}
	return s.suppliers.AddSupplier(ctx, input)
}

func (s *appService) UpdateSupplier(ctx context.Context, id string, req SupplierRequest) error {
	supplierID, err := parseID("supplier id", id)
	if err != nil {
		return err
	}
	input, err := parseSupplier(req)
	if err != nil {
		return err
	}
	return s.suppliers.UpdateSupplier(ctx, supplierID, input)
}

func (s *appService) DeleteSupplier(ctx context.Context, id string) error {
	supplierID, err := parseID("supplier id", id)
	if err != nil {
		return err
	}
	return s.suppliers.DeleteSupplier(ctx, supplierID)
}

func parseSupplier(req SupplierRequest) (core.SupplierInput, error) {
	var input core.SupplierInput
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return input, fmt.Errorf("%w: supplier name is required", ErrInvalidInput)
	}
	totalBill, err := parseAmount("total_bill", req.TotalBill)
	if err != nil {
		return input, err
	}
	paid, err := parseAmount("paid", req.Paid)
	if err != nil {
		return input, err
	}
	input = core.SupplierInput{
		Name:      name,
		Phone:     optString(req.Phone),
		TotalBill: totalBill,
		Paid:      paid,
	}
	return input, nil
}

func (s *appService) ListClients(ctx context.Context) ([]core.Client, error) {
	return s.clients.ListClients(ctx)
}

func (s *appService) AddClient(ctx context.Context, req ClientRequest) (*core.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	return s.clients.AddClient(ctx, name, strings.TrimSpace(req.Phone))
}

func (s *appService) UpdateClient(ctx context.Context, id string, req ClientRequest) error {
	clientID, err := parseID("client id", id)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	return s.clients.UpdateClient(ctx, clientID, name, strings.TrimSpace(req.Phone))
}

func (s *appService) DeleteClient(ctx context.Context, id string) error {
	clientID, err := parseID("client id", id)
	if err != nil {
		return err
	}
	return s.clients.DeleteClient(ctx, clientID)
}

func (s *appService) ListClientItems(ctx context.Context, clientID string) ([]core.ClientItem, error) {
	id, err := parseID("client id", clientID)
	if err != nil {
		return nil, err
	}
	return s.clients.ListItems(ctx, id)
}

func (s *appService) AddClientItem(ctx context.Context, req ClientItemRequest) (*core.ClientItem, error) {
	clientID, err := parseID("client_id", req.ClientID)
	if err != nil {
		return nil, err
	}
	itemName := strings.TrimSpace(req.ItemName)
	if itemName == "" {
		return nil, fmt.Errorf("%w: item_name is required", ErrInvalidInput)
	}
	qty, err := parseAmount("quantity", req.Quantity)
	if err != nil {
		return nil, err
	}
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return s.clients.AddItem(ctx, clientID, itemName, qty, day)
}

func (s *appService) DeleteClientItem(ctx context.Context, id string) error {
	itemID, err := parseID("client item id", id)
	if err != nil {
		return err
	}
	return s.clients.DeleteItem(ctx, itemID)
}

func (s *appService) ListVegetableNames(ctx context.Context) ([]core.VegetableName, error) {
	return s.veg.ListNames(ctx)
}

func (s *appService) AddVegetableName(ctx context.Context, req VegetableNameRequest) (*core.VegetableName, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: vegetable name is required", ErrInvalidInput)
	}
	return s.veg.AddName(ctx, name, strings.TrimSpace(req.Unit))
}

func (s *appService) UpdateVegetableName(ctx context.Context, id string, req VegetableNameRequest) error {
	nameID, err := parseID("vegetable name id", id)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: vegetable name is required", ErrInvalidInput)
	}
	return s.veg.UpdateName(ctx, nameID, name, strings.TrimSpace(req.Unit))
}

func (s *appService) DeleteVegetableName(ctx context.Context, id string) error {
	nameID, err := parseID("vegetable name id", id)
	if err != nil {
		return err
	}
	return s.veg.DeleteName(ctx, nameID)
}

func (s *appService) ListVegetables(ctx context.Context, date string) ([]core.Vegetable, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	return s.veg.ListByDate(ctx, day)
}

func (s *appService) AddVegetable(ctx context.Context, req VegetableRequest) (*core.Vegetable, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: vegetable name is required", ErrInvalidInput)
	}
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	qtyBought, err := parseAmount("qty_bought", req.QtyBought)
	if err != nil {
		return nil, err
	}
	priceBought, err := parseAmount("price_bought", req.PriceBought)
	if err != nil {
		return nil, err
	}
	return s.veg.AddVegetable(ctx, day, name, qtyBought, priceBought)
}

func (s *appService) UpdateVegetable(ctx context.Context, id string, req VegetableUpdateRequest) error {
	vegID, err := parseID("vegetable id", id)
	if err != nil {
		return err
	}
	qtySold, err := parseAmount("qty_sold", req.QtySold)
	if err != nil {
		return err
	}
	priceSold, err := parseAmount("price_sold", req.PriceSold)
	if err != nil {
		return err
	}
	return s.veg.UpdateVegetable(ctx, vegID, qtySold, priceSold)
}

func (s *appService) DeleteVegetable(ctx context.Context, id string) error {
	vegID, err := parseID("vegetable id", id)
	if err != nil {
		return err
	}
	return s.veg.DeleteVegetable(ctx, vegID)
}

func (s *appService) ListChickenRecords(ctx context.Context, date string) ([]core.ChickenRecord, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	return s.chicken.ListByDate(ctx, day)
}

func (s *appService) AddChickenRecord(ctx context.Context, req ChickenRecordRequest) (*core.ChickenRecord, error) {
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	var recordType core.ChickenRecordType
	switch strings.TrimSpace(req.Type) {
	case string(core.ChickenBought):
		recordType = core.ChickenBought
	case string(core.ChickenSold):
		recordType = core.ChickenSold
	default:
		return nil, fmt.Errorf("%w: chicken record type %q", ErrInvalidInput, req.Type)
	}
	qty, err := parseCount("quantity", req.Quantity)
	if err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	weight, err := parseAmount("weight_kg", req.WeightKg)
	if err != nil {
		return nil, err
	}
	price, err := parseAmount("price", req.Price)
	if err != nil {
		return nil, err
	}
	return s.chicken.AddRecord(ctx, core.ChickenRecordInput{
		Date:     day,
		Type:     recordType,
		Quantity: qty,
		WeightKg: weight,
		Price:    price,
	})
}

func (s *appService) DeleteChickenRecord(ctx context.Context, id string) error {
	recordID, err := parseID("chicken record id", id)
	if err != nil {
		return err
	}
	return s.chicken.DeleteRecord(ctx, recordID)
}

func (s *appService) DailyReport(ctx context.Context, date string) (*core.DailyReport, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	return s.reports.DailyReport(ctx, day)
}

func (s *appService) DashboardSummary(ctx context.Context, date string) (*core.DashboardSummary, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	return s.reports.DashboardSummary(ctx, day)
}
