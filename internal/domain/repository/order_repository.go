package repository

import (
	"context"
	"time"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
)

// OrderRow is an order joined with its customer's display name. Amounts are
// decimals, converted from cents in the query, so the row serializes straight
// onto the wire.
type OrderRow struct {
	OrderID         int64     `json:"order_id"`
	CustomerID      int64     `json:"customer_id"`
	OrderType       string    `json:"order_type"`
	OrderDate       time.Time `json:"order_date"`
	DeliveryDate    string    `json:"delivery_date"`
	DeliveryTime    string    `json:"delivery_time"`
	TotalAmount     float64   `json:"total_amount"`
	AdvancePayment  float64   `json:"advance_payment"`
	RemainingAmount float64   `json:"remaining_amount"`
	DeliveryAddress string    `json:"delivery_address"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
}

// OrderItemRow is an order line joined with the menu item's name when the line
// references the catalog.
type OrderItemRow struct {
	OrderItemID    int64   `json:"order_item_id"`
	OrderID        int64   `json:"order_id"`
	ItemID         *int64  `json:"item_id"`
	CustomItemName *string `json:"custom_item_name"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	MenuItemName   *string `json:"menu_item_name"`
}

// NewCustomerInput carries the payload for a customer created inline with an
// order. The address column is left blank, as the storefront never collects it
// at order time.
type NewCustomerInput struct {
	Name  string
	Phone string
}

// CreateOrderParams is everything the order-creation transaction writes.
// Either CustomerID or NewCustomer is set; amounts are cents.
type CreateOrderParams struct {
	CustomerID      int64
	NewCustomer     *NewCustomerInput
	OrderType       string
	DeliveryDate    string
	DeliveryTime    string
	TotalAmount     int64
	AdvancePayment  int64
	DeliveryAddress string
	Notes           string
	Status          string
	Items           []entity.OrderItem
}

// OrderRepository owns the order/payment ledger. CreateWithItems and
// ApplyPayment are the only write paths and both run as a single database
// transaction.
type OrderRepository interface {
	// CreateWithItems inserts the customer (when new), the order, its items
	// and the initial advance payment atomically, returning the new order id.
	CreateWithItems(ctx context.Context, params *CreateOrderParams) (int64, error)
	// ApplyPayment inserts a payment row and adjusts the order balance in one
	// transaction, then returns the updated order joined with its customer.
	ApplyPayment(ctx context.Context, orderID, amountCents int64, notes string) (*OrderRow, error)
	GetWithItems(ctx context.Context, orderID int64) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]OrderRow, error)
	// Pending returns orders with money outstanding, filtered by order id or
	// customer name substring.
	Pending(ctx context.Context, search string) ([]OrderRow, error)
	Items(ctx context.Context, orderID int64) ([]OrderItemRow, error)
	Payments(ctx context.Context, orderID int64) ([]entity.Payment, error)
}
