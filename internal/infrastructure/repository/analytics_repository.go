package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/janipakwan/pakwan-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetDashboardStats(ctx context.Context) (*domainRepo.DashboardStats, error) {
	stats := &domainRepo.DashboardStats{}
	db := r.db.WithContext(ctx)

	err := db.Raw(`
		SELECT COUNT(*) FROM orders WHERE order_date::date = CURRENT_DATE
	`).Scan(&stats.OrdersCount).Error
	if err != nil {
		return nil, err
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(total_amount), 0) / 100.0
		FROM orders WHERE order_date::date = CURRENT_DATE
	`).Scan(&stats.TodaysSales).Error
	if err != nil {
		return nil, err
	}

	// Pending money across all orders; remaining_amount is authoritative.
	err = db.Raw(`
		SELECT COALESCE(SUM(remaining_amount), 0) / 100.0
		FROM orders WHERE status != 'Fulfilled'
	`).Scan(&stats.PendingAmount).Error
	if err != nil {
		return nil, err
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(amount), 0) / 100.0
		FROM expenses WHERE expense_date = CURRENT_DATE
	`).Scan(&stats.TodaysExpenses).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
