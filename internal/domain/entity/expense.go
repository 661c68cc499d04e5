package entity

import (
	"encoding/json"
	"time"
)

// Expense is an independent append-only record with no relation to orders.
type Expense struct {
	ExpenseID   int64     `gorm:"primaryKey;autoIncrement;column:expense_id" json:"expense_id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Amount      int64     `gorm:"not null" json:"-"` // Stored in cents
	Category    string    `gorm:"size:100" json:"category"`
	ExpenseDate time.Time `gorm:"type:date;not null;column:expense_date" json:"expense_date"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
