package service

import (
	"context"
	"testing"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
)

type stubExpenseRepo struct {
	created []*entity.Expense
}

func (s *stubExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	s.created = append(s.created, expense)
	return nil
}

func (s *stubExpenseRepo) List(ctx context.Context) ([]entity.Expense, error) {
	return nil, nil
}

func TestAddExpense(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := NewExpenseService(repo)

	err := svc.Add(context.Background(), &AddExpenseInput{
		Description: "Cooking oil",
		Amount:      350.75,
		Category:    "Ingredients",
		ExpenseDate: "2025-03-12",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected one expense, got %d", len(repo.created))
	}
	e := repo.created[0]
	if e.Amount != 35075 {
		t.Errorf("Amount = %d cents, want 35075", e.Amount)
	}
	if e.ExpenseDate.Format("2006-01-02") != "2025-03-12" {
		t.Errorf("ExpenseDate = %v, want 2025-03-12", e.ExpenseDate)
	}
}

func TestAddExpenseValidation(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{})

	err := svc.Add(context.Background(), &AddExpenseInput{
		Amount:      100,
		ExpenseDate: "2025-03-12",
	})
	if err == nil {
		t.Error("expected error for missing description")
	}

	err = svc.Add(context.Background(), &AddExpenseInput{
		Description: "Gas refill",
		Amount:      100,
		ExpenseDate: "03/12/2025",
	})
	if err == nil {
		t.Error("expected error for malformed date")
	}
}
