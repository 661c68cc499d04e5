package service

import (
	"context"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
)

// OrderService owns the order/payment ledger operations
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// OrderItemInput represents one line item in a create-order request
type OrderItemInput struct {
	ItemID         *int64
	CustomItemName *string
	Quantity       int
	UnitPrice      float64
}

// CreateOrderInput represents the create order input. Amounts are decimals as
// received on the wire.
type CreateOrderInput struct {
	IsAddingNewCustomer bool
	NewCustomerName     string
	NewCustomerPhone    string
	CustomerID          int64
	OrderType           string
	DeliveryDate        string
	DeliveryTime        string
	TotalAmount         float64
	AdvancePayment      float64
	DeliveryAddress     string
	Notes               string
	Status              string
	Items               []OrderItemInput
}

// CreateOrder creates an order with its items and, when an advance was paid,
// the initial payment row. Everything commits atomically. When the caller
// selects an existing customer the id is used verbatim; the foreign key is the
// only existence check.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (int64, error) {
	params := &repository.CreateOrderParams{
		OrderType:       input.OrderType,
		DeliveryDate:    input.DeliveryDate,
		DeliveryTime:    input.DeliveryTime,
		TotalAmount:     toCents(input.TotalAmount),
		AdvancePayment:  toCents(input.AdvancePayment),
		DeliveryAddress: input.DeliveryAddress,
		Notes:           input.Notes,
		Status:          input.Status,
	}

	if input.IsAddingNewCustomer {
		if input.NewCustomerName == "" {
			return 0, apperror.NewBadRequestError("Customer name is required")
		}
		params.NewCustomer = &repository.NewCustomerInput{
			Name:  input.NewCustomerName,
			Phone: input.NewCustomerPhone,
		}
	} else {
		if input.CustomerID == 0 {
			return 0, apperror.NewBadRequestError("Customer is required")
		}
		params.CustomerID = input.CustomerID
	}

	items := make([]entity.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.OrderItem{
			ItemID:         item.ItemID,
			CustomItemName: item.CustomItemName,
			Quantity:       item.Quantity,
			UnitPrice:      toCents(item.UnitPrice),
		}
	}
	params.Items = items

	return s.orderRepo.CreateWithItems(ctx, params)
}

// ApplyPayment records a payment against an order and adjusts its balance and
// status atomically. Overpayment is allowed and drives remaining_amount
// negative; the order still lands on Fulfilled.
func (s *OrderService) ApplyPayment(ctx context.Context, orderID int64, amount float64, notes string) (*repository.OrderRow, error) {
	if orderID == 0 {
		return nil, apperror.NewBadRequestError("Order is required")
	}
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	return s.orderRepo.ApplyPayment(ctx, orderID, toCents(amount), notes)
}

// GetOrderWithItems fetches an order with its customer and line items.
func (s *OrderService) GetOrderWithItems(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// CustomerOrders lists a customer's orders, newest first.
func (s *OrderService) CustomerOrders(ctx context.Context, customerID int64) ([]repository.OrderRow, error) {
	return s.orderRepo.ListByCustomer(ctx, customerID)
}

// PendingOrders lists orders with money outstanding, filtered by order id or
// customer name substring.
func (s *OrderService) PendingOrders(ctx context.Context, search string) ([]repository.OrderRow, error) {
	return s.orderRepo.Pending(ctx, search)
}

// OrderItems lists an order's line items with catalog names joined in.
func (s *OrderService) OrderItems(ctx context.Context, orderID int64) ([]repository.OrderItemRow, error) {
	return s.orderRepo.Items(ctx, orderID)
}

// OrderPayments lists the payment history of an order, newest first.
func (s *OrderService) OrderPayments(ctx context.Context, orderID int64) ([]entity.Payment, error) {
	return s.orderRepo.Payments(ctx, orderID)
}
