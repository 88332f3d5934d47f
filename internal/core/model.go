package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Client is a party that holds assigned cylinders (shops, distributors).
type Client struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientItem is a miscellaneous goods line handed to a client on a date.
type ClientItem struct {
	ID         int             `json:"id"`
	ClientID   int             `json:"client_id"`
	ClientName string          `json:"client_name,omitempty"`
	ItemName   string          `json:"item_name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Date       string          `json:"date"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CylinderType is one size/price class of cylinder. NoOfCylinders is the
// unassigned stock for that class and never goes negative.
type CylinderType struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	CylinderPrice decimal.Decimal `json:"cylinder_price"`
	GasPrice      decimal.Decimal `json:"gas_price"`
	NoOfCylinders int             `json:"no_of_cylinders"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CylinderAssignment records cylinders handed to a client on a date.
// At most one row exists per (client, type, date); repeated assignments on
// the same day merge into it.
type CylinderAssignment struct {
	ID               int       `json:"id"`
	ClientID         int       `json:"client_id"`
	ClientName       string    `json:"client_name,omitempty"`
	CylinderTypeID   int       `json:"cylinder_type_id"`
	CylinderTypeName string    `json:"cylinder_type_name,omitempty"`
	Quantity         int       `json:"quantity"`
	Date             string    `json:"date"`
	CreatedAt        time.Time `json:"created_at"`
}

// Customer carries a running debt balance: the signed sum of the remaining
// amounts of its live daily sales, maintained incrementally on each write.
type Customer struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Phone     *string         `json:"phone"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DailySaleSheet is the informational opening snapshot for a date.
// At most one row exists per date.
type DailySaleSheet struct {
	ID             int             `json:"id"`
	Date           string          `json:"date"`
	TotalCylinders int             `json:"total_cylinders"`
	TotalGasKg     decimal.Decimal `json:"total_gas_kg"`
	CreatedAt      time.Time       `json:"created_at"`
}

type SaleType string

const (
	SaleTypeGas   SaleType = "gas"
	SaleTypeOther SaleType = "other"
)

type DailySale struct {
	ID            int              `json:"id"`
	Date          string           `json:"date"`
	CustomerID    int              `json:"customer_id"`
	CustomerName  string           `json:"customer_name,omitempty"`
	CustomerPhone *string          `json:"customer_phone,omitempty"`
	SaleType      SaleType         `json:"sale_type"`
	GasKg         *decimal.Decimal `json:"gas_kg"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	Paid          decimal.Decimal  `json:"paid"`
	Remaining     decimal.Decimal  `json:"remaining"`
	CreatedAt     time.Time        `json:"created_at"`
}

type Employee struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SalaryRecord is one employee's pay line for a month ("2026-01").
// One row per (employee, month); re-adding the same month overwrites it.
type SalaryRecord struct {
	ID            int             `json:"id"`
	EmployeeID    int             `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	EmployeePhone *string         `json:"employee_phone,omitempty"`
	Month         string          `json:"month"`
	TotalPay      decimal.Decimal `json:"total_pay"`
	Paid          decimal.Decimal `json:"paid"`
	Remaining     decimal.Decimal `json:"remaining"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Supplier keeps its bill totals flat on the row itself: there is no line
// history behind TotalBill/Paid/Remaining. This is a different ledger shape
// from daily sales and is kept separate on purpose.
type Supplier struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Phone     *string         `json:"phone"`
	TotalBill decimal.Decimal `json:"total_bill"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type VegetableName struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// Vegetable is one produce line for a date. Remaining stock is
// QtyBought - QtySold; the service does not clamp QtySold against it.
type Vegetable struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	QtyBought   decimal.Decimal `json:"qty_bought"`
	QtySold     decimal.Decimal `json:"qty_sold"`
	PriceBought decimal.Decimal `json:"price_bought"`
	PriceSold   decimal.Decimal `json:"price_sold"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ChickenRecordType string

const (
	ChickenBought ChickenRecordType = "bought"
	ChickenSold   ChickenRecordType = "sold"
)

type ChickenRecord struct {
	ID        int               `json:"id"`
	Type      ChickenRecordType `json:"type"`
	Quantity  int               `json:"quantity"`
	WeightKg  decimal.Decimal   `json:"weight_kg"`
	Price     decimal.Decimal   `json:"price"`
	Date      string            `json:"date"`
	CreatedAt time.Time         `json:"created_at"`
}
