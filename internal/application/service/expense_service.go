package service

import (
	"context"
	"time"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
)

// ExpenseService handles the expense ledger
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// AddExpenseInput represents the add expense input
type AddExpenseInput struct {
	Description string
	Amount      float64
	Category    string
	ExpenseDate string // YYYY-MM-DD
}

// Add records a new expense. Expenses are append-only and unrelated to orders.
func (s *ExpenseService) Add(ctx context.Context, input *AddExpenseInput) error {
	if input.Description == "" {
		return apperror.NewBadRequestError("Description is required")
	}

	date, err := time.Parse("2006-01-02", input.ExpenseDate)
	if err != nil {
		return apperror.NewBadRequestError("Invalid expense date")
	}

	expense := &entity.Expense{
		Description: input.Description,
		Amount:      toCents(input.Amount),
		Category:    input.Category,
		ExpenseDate: date,
	}
	return s.expenseRepo.Create(ctx, expense)
}

// List returns all expenses, newest first.
func (s *ExpenseService) List(ctx context.Context) ([]entity.Expense, error) {
	return s.expenseRepo.List(ctx)
}
