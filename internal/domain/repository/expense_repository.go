package repository

import (
	"context"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context) ([]entity.Expense, error)
}
