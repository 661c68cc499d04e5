package service

import (
	"context"
	"testing"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
)

type stubOrderRepo struct {
	lastParams      *repository.CreateOrderParams
	lastAmountCents int64
	lastNotes       string
}

func (s *stubOrderRepo) CreateWithItems(ctx context.Context, params *repository.CreateOrderParams) (int64, error) {
	s.lastParams = params
	return 101, nil
}

func (s *stubOrderRepo) ApplyPayment(ctx context.Context, orderID, amountCents int64, notes string) (*repository.OrderRow, error) {
	s.lastAmountCents = amountCents
	s.lastNotes = notes
	return &repository.OrderRow{OrderID: orderID}, nil
}

func (s *stubOrderRepo) GetWithItems(ctx context.Context, orderID int64) (*entity.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]repository.OrderRow, error) {
	return nil, nil
}

func (s *stubOrderRepo) Pending(ctx context.Context, search string) ([]repository.OrderRow, error) {
	return nil, nil
}

func (s *stubOrderRepo) Items(ctx context.Context, orderID int64) ([]repository.OrderItemRow, error) {
	return nil, nil
}

func (s *stubOrderRepo) Payments(ctx context.Context, orderID int64) ([]entity.Payment, error) {
	return nil, nil
}

func TestCreateOrderValidation(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{})

	tests := []struct {
		name    string
		input   CreateOrderInput
		wantErr bool
	}{
		{
			name: "new customer without name",
			input: CreateOrderInput{
				IsAddingNewCustomer: true,
				TotalAmount:         100,
			},
			wantErr: true,
		},
		{
			name: "existing customer without id",
			input: CreateOrderInput{
				IsAddingNewCustomer: false,
				TotalAmount:         100,
			},
			wantErr: true,
		},
		{
			name: "new customer with name",
			input: CreateOrderInput{
				IsAddingNewCustomer: true,
				NewCustomerName:     "Asif",
				TotalAmount:         100,
			},
			wantErr: false,
		},
		{
			name: "existing customer with id",
			input: CreateOrderInput{
				CustomerID:  5,
				TotalAmount: 100,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		_, err := svc.CreateOrder(context.Background(), &tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: CreateOrder error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestCreateOrderConvertsAmountsToCents(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo)

	itemID := int64(3)
	input := &CreateOrderInput{
		CustomerID:     5,
		OrderType:      "Delivery",
		TotalAmount:    1250.50,
		AdvancePayment: 500.25,
		Status:         "Partially_Paid",
		Items: []OrderItemInput{
			{ItemID: &itemID, Quantity: 10, UnitPrice: 125.05},
		},
	}

	orderID, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if orderID != 101 {
		t.Errorf("orderID = %d, want 101", orderID)
	}

	params := repo.lastParams
	if params.TotalAmount != 125050 {
		t.Errorf("TotalAmount = %d cents, want 125050", params.TotalAmount)
	}
	if params.AdvancePayment != 50025 {
		t.Errorf("AdvancePayment = %d cents, want 50025", params.AdvancePayment)
	}
	if params.Status != "Partially_Paid" {
		t.Errorf("Status = %q, want caller value preserved", params.Status)
	}
	if len(params.Items) != 1 || params.Items[0].UnitPrice != 12505 {
		t.Errorf("item UnitPrice = %v, want 12505 cents", params.Items)
	}
}

func TestApplyPaymentValidation(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo)

	if _, err := svc.ApplyPayment(context.Background(), 0, 100, ""); err == nil {
		t.Error("expected error for missing order id")
	}
	if _, err := svc.ApplyPayment(context.Background(), 7, 0, ""); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, err := svc.ApplyPayment(context.Background(), 7, -50, ""); err == nil {
		t.Error("expected error for negative amount")
	}

	updated, err := svc.ApplyPayment(context.Background(), 7, 250.75, "second installment")
	if err != nil {
		t.Fatalf("ApplyPayment returned error: %v", err)
	}
	if updated.OrderID != 7 {
		t.Errorf("updated order id = %d, want 7", updated.OrderID)
	}
	if repo.lastAmountCents != 25075 {
		t.Errorf("amount = %d cents, want 25075", repo.lastAmountCents)
	}
	if repo.lastNotes != "second installment" {
		t.Errorf("notes = %q, want preserved", repo.lastNotes)
	}
}

func TestAmountsRoundToNearestCent(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo)

	// 19.99 is not exactly representable as a float; truncation would record
	// 1998 cents and leave a fully paid order Partially_Paid.
	if _, err := svc.ApplyPayment(context.Background(), 7, 19.99, ""); err != nil {
		t.Fatalf("ApplyPayment returned error: %v", err)
	}
	if repo.lastAmountCents != 1999 {
		t.Errorf("payment of 19.99 recorded as %d cents, want 1999", repo.lastAmountCents)
	}

	input := &CreateOrderInput{
		CustomerID:  5,
		TotalAmount: 39.98,
		Items: []OrderItemInput{
			{Quantity: 2, UnitPrice: 19.99},
		},
	}
	if _, err := svc.CreateOrder(context.Background(), input); err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if repo.lastParams.TotalAmount != 3998 {
		t.Errorf("total of 39.98 stored as %d cents, want 3998", repo.lastParams.TotalAmount)
	}
	if repo.lastParams.Items[0].UnitPrice != 1999 {
		t.Errorf("unit price of 19.99 stored as %d cents, want 1999", repo.lastParams.Items[0].UnitPrice)
	}
}

func TestGetOrderWithItemsNotFound(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{})

	if _, err := svc.GetOrderWithItems(context.Background(), 999); err == nil {
		t.Error("expected not found error for missing order")
	}
}
