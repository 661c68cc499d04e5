package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	domainRepo "github.com/janipakwan/pakwan-api/internal/domain/repository"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) Search(ctx context.Context, term string, limit int) ([]entity.Customer, error) {
	customers := []entity.Customer{}
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR phone ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) History(ctx context.Context, term string) ([]domainRepo.CustomerHistoryRow, error) {
	rows := []domainRepo.CustomerHistoryRow{}
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.customer_id,
			c.name,
			c.phone,
			c.address,
			COUNT(o.order_id) AS total_orders,
			COALESCE(SUM(o.total_amount), 0) / 100.0 AS total_spent,
			COALESCE(SUM(o.remaining_amount), 0) / 100.0 AS total_pending,
			MAX(o.order_date)::text AS last_order_date
		FROM customers c
		LEFT JOIN orders o ON c.customer_id = o.customer_id
		WHERE c.name ILIKE ? OR c.phone ILIKE ?
		GROUP BY c.customer_id, c.name, c.phone, c.address
		ORDER BY last_order_date DESC NULLS LAST`, pattern, pattern).
		Scan(&rows).Error
	return rows, err
}
