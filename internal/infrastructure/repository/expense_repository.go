package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	domainRepo "github.com/janipakwan/pakwan-api/internal/domain/repository"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	expenses := []entity.Expense{}
	err := r.db.WithContext(ctx).Order("expense_date DESC").Find(&expenses).Error
	return expenses, err
}
