package entity

import (
	"encoding/json"
	"time"
)

// Payment is an append-only ledger row against an order. Every payment row is
// written in the same transaction as the matching order-balance adjustment.
type Payment struct {
	PaymentID   int64     `gorm:"primaryKey;autoIncrement;column:payment_id" json:"payment_id"`
	OrderID     int64     `gorm:"not null;index;column:order_id" json:"order_id"`
	Amount      int64     `gorm:"not null" json:"-"` // Stored in cents
	PaymentDate time.Time `gorm:"not null;column:payment_date" json:"payment_date"`
	Notes       string    `gorm:"type:text" json:"notes"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
