package app

// Request types mirror what the forms post: every field arrives as a string
// and is parsed inside the application service. Numeric fields that the
// forms leave blank are treated as zero, dates default to today.

type CylinderTypeRequest struct {
	Name          string `json:"name"`
	WeightKg      string `json:"weight_kg"`
	CylinderPrice string `json:"cylinder_price"`
	GasPrice      string `json:"gas_price"`
	NoOfCylinders string `json:"no_of_cylinders"`
}

type AssignRequest struct {
	ClientID       string `json:"client_id"`
	CylinderTypeID string `json:"cylinder_type_id"`
	Quantity       string `json:"quantity"`
	Date           string `json:"date"`
}

type UpdateAssignmentRequest struct {
	Quantity string `json:"quantity"`
}

type DayOpeningRequest struct {
	Date           string `json:"date"`
	TotalCylinders string `json:"total_cylinders"`
	TotalGasKg     string `json:"total_gas_kg"`
}

type DailySaleRequest struct {
	Date         string `json:"date"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	SaleType     string `json:"sale_type"`
	GasKg        string `json:"gas_kg"`
	TotalAmount  string `json:"total_amount"`
	Paid         string `json:"paid"`
}

type SalaryRequest struct {
	EmployeeName string `json:"employee_name"`
	Phone        string `json:"phone"`
	Month        string `json:"month"`
	TotalPay     string `json:"total_pay"`
	Paid         string `json:"paid"`
}

type SalaryUpdateRequest struct {
	TotalPay string `json:"total_pay"`
	Paid     string `json:"paid"`
	Phone    string `json:"phone"`
}

type SupplierRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	TotalBill string `json:"total_bill"`
	Paid      string `json:"paid"`
}

type ClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ClientItemRequest struct {
	ClientID string `json:"client_id"`
	ItemName string `json:"item_name"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"`
}

type VegetableNameRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type VegetableRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	QtyBought   string `json:"qty_bought"`
	PriceBought string `json:"price_bought"`
}

type VegetableUpdateRequest struct {
	QtySold   string `json:"qty_sold"`
	PriceSold string `json:"price_sold"`
}

type ChickenRecordRequest struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Quantity string `json:"quantity"`
	WeightKg string `json:"weight_kg"`
	Price    string `json:"price"`
}
