package service

import (
	"context"
	"time"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
)

// PartyTransactionTypePayment posts a payment against an existing charge row;
// any other type posts a new charge.
const PartyTransactionTypePayment = "Payment"

// PartyService handles the supply-party billing ledger
type PartyService struct {
	partyRepo repository.PartyRepository
}

// NewPartyService creates a new party service
func NewPartyService(partyRepo repository.PartyRepository) *PartyService {
	return &PartyService{partyRepo: partyRepo}
}

// AddSupplyBillInput represents the add supply bill input
type AddSupplyBillInput struct {
	PartyName   string
	SupplyDate  string // YYYY-MM-DD
	Details     string
	TotalAmount float64
}

// AddSupplyBill records one billable charge from a supplier.
func (s *PartyService) AddSupplyBill(ctx context.Context, input *AddSupplyBillInput) error {
	if input.PartyName == "" {
		return apperror.NewBadRequestError("Party name is required")
	}

	date, err := time.Parse("2006-01-02", input.SupplyDate)
	if err != nil {
		return apperror.NewBadRequestError("Invalid supply date")
	}

	party := &entity.Party{
		PartyName:   input.PartyName,
		SupplyDate:  date,
		Details:     input.Details,
		TotalAmount: toCents(input.TotalAmount),
	}
	return s.partyRepo.CreateCharge(ctx, party)
}

// AddTransactionInput represents the add party transaction input
type AddTransactionInput struct {
	Type      string
	PartyID   int64
	PartyName string
	Amount    float64
	Note      string
}

// AddTransaction posts either a payment against a specific charge row or a new
// charge dated now. Balances are never mutated; they are always derived.
func (s *PartyService) AddTransaction(ctx context.Context, input *AddTransactionInput) error {
	if input.Type == PartyTransactionTypePayment {
		if input.PartyID == 0 {
			return apperror.NewBadRequestError("Party is required")
		}
		payment := &entity.PartyPayment{
			PartyID:     input.PartyID,
			PaymentDate: time.Now(),
			AmountPaid:  toCents(input.Amount),
			Note:        input.Note,
		}
		return s.partyRepo.CreatePayment(ctx, payment)
	}

	// New charge
	if input.PartyName == "" {
		return apperror.NewBadRequestError("Party name is required")
	}
	details := input.Note
	if details == "" {
		details = entity.DefaultChargeDetails
	}
	party := &entity.Party{
		PartyName:   input.PartyName,
		SupplyDate:  time.Now(),
		Details:     details,
		TotalAmount: toCents(input.Amount),
	}
	return s.partyRepo.CreateCharge(ctx, party)
}

// Supplies lists every charge row with derived paid/pending amounts.
func (s *PartyService) Supplies(ctx context.Context) ([]repository.SupplyPartyRow, error) {
	return s.partyRepo.Supplies(ctx)
}

// Names lists distinct supplier names.
func (s *PartyService) Names(ctx context.Context) ([]string, error) {
	return s.partyRepo.Names(ctx)
}

// Ledger returns the full charge and payment history for one supplier name.
func (s *PartyService) Ledger(ctx context.Context, partyName string) (*repository.PartyLedger, error) {
	return s.partyRepo.Ledger(ctx, partyName)
}

// PendingAmount computes a supplier's outstanding balance from its ledger:
// the sum of all charges minus the sum of all payments, in cents.
func PendingAmount(ledger *repository.PartyLedger) int64 {
	var pending int64
	for _, supply := range ledger.Supplies {
		pending += supply.TotalAmount
	}
	for _, payment := range ledger.Payments {
		pending -= payment.AmountPaid
	}
	return pending
}
