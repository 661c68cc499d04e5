package entity

import (
	"encoding/json"
	"time"

	"github.com/janipakwan/pakwan-api/internal/domain/enum"
)

// InitialAdvanceNote is the fixed note attached to the payment row created when
// an order is placed with an advance.
const InitialAdvanceNote = "Initial advance payment"

// Order is a single customer transaction with one or more line items, a total,
// and a payment balance. remaining_amount must equal total_amount minus
// advance_payment after every mutation; the order-creation and
// payment-application transactions are the only writers.
type Order struct {
	OrderID         int64            `gorm:"primaryKey;autoIncrement;column:order_id" json:"order_id"`
	CustomerID      int64            `gorm:"not null;index;column:customer_id" json:"customer_id"`
	OrderType       string           `gorm:"size:50;column:order_type" json:"order_type"`
	OrderDate       time.Time        `gorm:"not null;column:order_date" json:"order_date"`
	DeliveryDate    string           `gorm:"size:20;column:delivery_date" json:"delivery_date"`
	DeliveryTime    string           `gorm:"size:20;column:delivery_time" json:"delivery_time"`
	TotalAmount     int64            `gorm:"not null;column:total_amount" json:"-"`     // Stored in cents
	AdvancePayment  int64            `gorm:"default:0;column:advance_payment" json:"-"` // Stored in cents
	RemainingAmount int64            `gorm:"not null;column:remaining_amount" json:"-"` // Stored in cents
	DeliveryAddress string           `gorm:"type:text;column:delivery_address" json:"delivery_address"`
	Notes           string           `gorm:"type:text" json:"notes"`
	Status          enum.OrderStatus `gorm:"size:20;not null" json:"status"`

	// Relationships
	Customer Customer    `gorm:"foreignKey:CustomerID;references:CustomerID" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;references:OrderID" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID;references:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		TotalAmount     float64 `json:"total_amount"`
		AdvancePayment  float64 `json:"advance_payment"`
		RemainingAmount float64 `json:"remaining_amount"`
	}{
		Alias:           Alias(o),
		TotalAmount:     float64(o.TotalAmount) / 100,
		AdvancePayment:  float64(o.AdvancePayment) / 100,
		RemainingAmount: float64(o.RemainingAmount) / 100,
	})
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Exactly one of ItemID or CustomItemName
// identifies the line: catalog lines reference menu_items, custom lines carry
// their own name. Lines are created with the order and never mutated.
type OrderItem struct {
	OrderItemID    int64   `gorm:"primaryKey;autoIncrement;column:order_item_id" json:"order_item_id"`
	OrderID        int64   `gorm:"not null;index;column:order_id" json:"order_id"`
	ItemID         *int64  `gorm:"column:item_id" json:"item_id"`
	CustomItemName *string `gorm:"size:255;column:custom_item_name" json:"custom_item_name"`
	Quantity       int     `gorm:"not null" json:"quantity"`
	UnitPrice      int64   `gorm:"not null;column:unit_price" json:"-"` // Stored in cents

	// Relationships
	Order    Order     `gorm:"foreignKey:OrderID;references:OrderID" json:"-"`
	MenuItem *MenuItem `gorm:"foreignKey:ItemID;references:ItemID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
	})
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
