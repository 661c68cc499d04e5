package request

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewCustomerRequest is the inline customer payload on order creation
type NewCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderRequest is the order payload on order creation. Amounts are decimals.
type OrderRequest struct {
	OrderType       string  `json:"order_type"`
	DeliveryDate    string  `json:"delivery_date"`
	DeliveryTime    string  `json:"delivery_time"`
	TotalAmount     float64 `json:"total_amount"`
	AdvancePayment  float64 `json:"advance_payment"`
	DeliveryAddress string  `json:"delivery_address"`
	Notes           string  `json:"notes"`
	Status          string  `json:"status"`
}

// OrderItemRequest is one line item on order creation
type OrderItemRequest struct {
	ItemID         *int64  `json:"item_id"`
	CustomItemName *string `json:"custom_item_name"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
}

// CreateOrderRequest represents the create order request body
type CreateOrderRequest struct {
	IsAddingNewCustomer bool               `json:"isAddingNewCustomer"`
	NewCustomer         NewCustomerRequest `json:"newCustomer"`
	CustomerID          int64              `json:"customerId"`
	Order               OrderRequest       `json:"order"`
	Items               []OrderItemRequest `json:"items"`
}

// AddPaymentRequest represents the add payment request body
type AddPaymentRequest struct {
	OrderID int64   `json:"order_id"`
	Amount  float64 `json:"amount"`
	Notes   string  `json:"notes"`
}

// AddExpenseRequest represents the add expense request body
type AddExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ExpenseDate string  `json:"expense_date"`
}

// AddSupplyBillRequest represents the add supply bill request body
type AddSupplyBillRequest struct {
	PartyName   string  `json:"party_name"`
	SupplyDate  string  `json:"supply_date"`
	Details     string  `json:"details"`
	TotalAmount float64 `json:"total_amount"`
}

// AddPartyTransactionRequest represents the add party transaction request body
type AddPartyTransactionRequest struct {
	Type      string  `json:"type"`
	PartyID   int64   `json:"party_id"`
	PartyName string  `json:"party_name"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
}

// PrintReceiptRequest represents the print receipt request body
type PrintReceiptRequest struct {
	OrderID int64 `json:"order_id"`
}
