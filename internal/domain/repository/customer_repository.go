package repository

import (
	"context"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
)

// CustomerHistoryRow is one customer with order totals aggregated across their
// order history. Amounts are decimals, converted from cents in the query.
type CustomerHistoryRow struct {
	CustomerID    int64   `json:"customer_id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	TotalOrders   int64   `json:"total_orders"`
	TotalSpent    float64 `json:"total_spent"`
	TotalPending  float64 `json:"total_pending"`
	LastOrderDate *string `json:"last_order_date"`
}

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// Search matches name or phone case-insensitively, capped at limit rows.
	Search(ctx context.Context, term string, limit int) ([]entity.Customer, error)
	// History returns customers matching term with aggregated order totals.
	History(ctx context.Context, term string) ([]CustomerHistoryRow, error)
}
