package entity

import (
	"encoding/json"
	"time"
)

// DefaultChargeDetails is used when a party charge is posted without a note.
const DefaultChargeDetails = "Additional charge"

// Party is one billable charge from a third-party supplier. A supplier's
// aggregate balance is never stored; it is the sum over all of its charge rows
// minus all payments recorded against them.
type Party struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PartyName   string    `gorm:"size:255;not null;index;column:party_name" json:"party_name"`
	SupplyDate  time.Time `gorm:"type:date;not null;column:supply_date" json:"supply_date"`
	Details     string    `gorm:"type:text" json:"details"`
	TotalAmount int64     `gorm:"not null;column:total_amount" json:"-"` // Stored in cents

	// Relationships
	Payments []PartyPayment `gorm:"foreignKey:PartyID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Party) MarshalJSON() ([]byte, error) {
	type Alias Party
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(p),
		TotalAmount: float64(p.TotalAmount) / 100,
	})
}

// TableName returns the table name for the Party model
func (Party) TableName() string {
	return "parties"
}

// PartyPayment is an append-only payment against one specific charge row, not
// against the supplier's aggregate balance.
type PartyPayment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PartyID     int64     `gorm:"not null;index;column:party_id" json:"party_id"`
	PaymentDate time.Time `gorm:"not null;column:payment_date" json:"payment_date"`
	AmountPaid  int64     `gorm:"not null;column:amount_paid" json:"-"` // Stored in cents
	Note        string    `gorm:"type:text" json:"note"`

	// Relationships
	Party Party `gorm:"foreignKey:PartyID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (pp PartyPayment) MarshalJSON() ([]byte, error) {
	type Alias PartyPayment
	return json.Marshal(&struct {
		Alias
		AmountPaid float64 `json:"amount_paid"`
	}{
		Alias:      Alias(pp),
		AmountPaid: float64(pp.AmountPaid) / 100,
	})
}

// TableName returns the table name for the PartyPayment model
func (PartyPayment) TableName() string {
	return "party_payments"
}
