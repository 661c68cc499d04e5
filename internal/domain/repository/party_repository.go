package repository

import (
	"context"
	"time"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
)

// SupplyPartyRow is one charge row with its paid and pending amounts derived
// from the payments recorded against it. Amounts are decimals.
type SupplyPartyRow struct {
	ID            int64     `json:"id"`
	PartyName     string    `json:"party_name"`
	SupplyDate    time.Time `json:"supply_date"`
	TotalAmount   float64   `json:"total_amount"`
	AmountPaid    float64   `json:"amount_paid"`
	PendingAmount float64   `json:"pending_amount"`
}

// PartyLedger is the full charge and payment history for one supplier name.
type PartyLedger struct {
	Supplies []entity.Party        `json:"supplies"`
	Payments []entity.PartyPayment `json:"payments"`
}

// PartyRepository defines the interface for supply-party ledger access
type PartyRepository interface {
	CreateCharge(ctx context.Context, party *entity.Party) error
	CreatePayment(ctx context.Context, payment *entity.PartyPayment) error
	// Supplies returns every charge row with derived paid/pending sums.
	Supplies(ctx context.Context) ([]SupplyPartyRow, error)
	Names(ctx context.Context) ([]string, error)
	Ledger(ctx context.Context, partyName string) (*PartyLedger, error)
}
