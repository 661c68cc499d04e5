package service

import (
	"context"
	"testing"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
)

type stubPartyRepo struct {
	charges  []*entity.Party
	payments []*entity.PartyPayment
}

func (s *stubPartyRepo) CreateCharge(ctx context.Context, party *entity.Party) error {
	s.charges = append(s.charges, party)
	return nil
}

func (s *stubPartyRepo) CreatePayment(ctx context.Context, payment *entity.PartyPayment) error {
	s.payments = append(s.payments, payment)
	return nil
}

func (s *stubPartyRepo) Supplies(ctx context.Context) ([]repository.SupplyPartyRow, error) {
	return nil, nil
}

func (s *stubPartyRepo) Names(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (s *stubPartyRepo) Ledger(ctx context.Context, partyName string) (*repository.PartyLedger, error) {
	return &repository.PartyLedger{}, nil
}

func TestAddTransactionPayment(t *testing.T) {
	repo := &stubPartyRepo{}
	svc := NewPartyService(repo)

	err := svc.AddTransaction(context.Background(), &AddTransactionInput{
		Type:    "Payment",
		PartyID: 12,
		Amount:  450.50,
		Note:    "cash",
	})
	if err != nil {
		t.Fatalf("AddTransaction returned error: %v", err)
	}

	if len(repo.payments) != 1 || len(repo.charges) != 0 {
		t.Fatalf("expected one payment and no charges, got %d/%d", len(repo.payments), len(repo.charges))
	}
	p := repo.payments[0]
	if p.PartyID != 12 {
		t.Errorf("PartyID = %d, want 12", p.PartyID)
	}
	if p.AmountPaid != 45050 {
		t.Errorf("AmountPaid = %d cents, want 45050", p.AmountPaid)
	}
	if p.Note != "cash" {
		t.Errorf("Note = %q, want cash", p.Note)
	}
}

func TestAddTransactionPaymentRequiresParty(t *testing.T) {
	svc := NewPartyService(&stubPartyRepo{})

	err := svc.AddTransaction(context.Background(), &AddTransactionInput{
		Type:   "Payment",
		Amount: 100,
	})
	if err == nil {
		t.Error("expected error for payment without party id")
	}
}

func TestAddTransactionNewCharge(t *testing.T) {
	repo := &stubPartyRepo{}
	svc := NewPartyService(repo)

	err := svc.AddTransaction(context.Background(), &AddTransactionInput{
		Type:      "New Charge",
		PartyName: "Karachi Meat Supply",
		Amount:    2000,
	})
	if err != nil {
		t.Fatalf("AddTransaction returned error: %v", err)
	}

	if len(repo.charges) != 1 || len(repo.payments) != 0 {
		t.Fatalf("expected one charge and no payments, got %d/%d", len(repo.charges), len(repo.payments))
	}
	charge := repo.charges[0]
	if charge.PartyName != "Karachi Meat Supply" {
		t.Errorf("PartyName = %q, want Karachi Meat Supply", charge.PartyName)
	}
	if charge.TotalAmount != 200000 {
		t.Errorf("TotalAmount = %d cents, want 200000", charge.TotalAmount)
	}
	if charge.Details != entity.DefaultChargeDetails {
		t.Errorf("Details = %q, want default when note is empty", charge.Details)
	}
}

func TestAddSupplyBillRejectsBadDate(t *testing.T) {
	svc := NewPartyService(&stubPartyRepo{})

	err := svc.AddSupplyBill(context.Background(), &AddSupplyBillInput{
		PartyName:   "Dairy Farm",
		SupplyDate:  "12-03-2025",
		TotalAmount: 500,
	})
	if err == nil {
		t.Error("expected error for malformed supply date")
	}

	err = svc.AddSupplyBill(context.Background(), &AddSupplyBillInput{
		PartyName:   "Dairy Farm",
		SupplyDate:  "2025-03-12",
		TotalAmount: 500,
	})
	if err != nil {
		t.Errorf("AddSupplyBill returned error for valid date: %v", err)
	}
}

func TestPendingAmount(t *testing.T) {
	tests := []struct {
		name   string
		ledger repository.PartyLedger
		want   int64
	}{
		{
			name: "charges minus payments",
			ledger: repository.PartyLedger{
				Supplies: []entity.Party{
					{TotalAmount: 100000},
					{TotalAmount: 50000},
				},
				Payments: []entity.PartyPayment{
					{AmountPaid: 60000},
				},
			},
			want: 90000,
		},
		{
			name: "fully settled",
			ledger: repository.PartyLedger{
				Supplies: []entity.Party{{TotalAmount: 25000}},
				Payments: []entity.PartyPayment{{AmountPaid: 25000}},
			},
			want: 0,
		},
		{
			name: "overpaid goes negative",
			ledger: repository.PartyLedger{
				Supplies: []entity.Party{{TotalAmount: 10000}},
				Payments: []entity.PartyPayment{{AmountPaid: 15000}},
			},
			want: -5000,
		},
		{
			name:   "empty ledger",
			ledger: repository.PartyLedger{},
			want:   0,
		},
	}
	for _, tt := range tests {
		if got := PendingAmount(&tt.ledger); got != tt.want {
			t.Errorf("%s: PendingAmount = %d, want %d", tt.name, got, tt.want)
		}
	}
}
