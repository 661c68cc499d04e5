package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	domainRepo "github.com/janipakwan/pakwan-api/internal/domain/repository"
)

type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new supply-party repository
func NewPartyRepository(db *gorm.DB) domainRepo.PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) CreateCharge(ctx context.Context, party *entity.Party) error {
	return r.db.WithContext(ctx).Create(party).Error
}

func (r *partyRepository) CreatePayment(ctx context.Context, payment *entity.PartyPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Supplies derives paid and pending amounts per charge row. Balances are never
// stored, so the sums here are the only source of truth.
func (r *partyRepository) Supplies(ctx context.Context) ([]domainRepo.SupplyPartyRow, error) {
	rows := []domainRepo.SupplyPartyRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.party_name,
			p.supply_date,
			p.total_amount / 100.0 AS total_amount,
			COALESCE(SUM(pp.amount_paid), 0) / 100.0 AS amount_paid,
			(p.total_amount - COALESCE(SUM(pp.amount_paid), 0)) / 100.0 AS pending_amount
		FROM parties p
		LEFT JOIN party_payments pp ON p.id = pp.party_id
		GROUP BY p.id, p.party_name, p.supply_date, p.total_amount
		ORDER BY p.supply_date DESC`).
		Scan(&rows).Error
	return rows, err
}

func (r *partyRepository) Names(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&entity.Party{}).
		Distinct("party_name").
		Order("party_name").
		Pluck("party_name", &names).Error
	return names, err
}

func (r *partyRepository) Ledger(ctx context.Context, partyName string) (*domainRepo.PartyLedger, error) {
	ledger := &domainRepo.PartyLedger{
		Supplies: []entity.Party{},
		Payments: []entity.PartyPayment{},
	}

	err := r.db.WithContext(ctx).
		Where("party_name = ?", partyName).
		Order("supply_date").
		Find(&ledger.Supplies).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Joins("JOIN parties p ON party_payments.party_id = p.id").
		Where("p.party_name = ?", partyName).
		Order("party_payments.payment_date").
		Find(&ledger.Payments).Error
	if err != nil {
		return nil, err
	}

	return ledger, nil
}
