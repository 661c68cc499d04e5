package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/enum"
	domainRepo "github.com/janipakwan/pakwan-api/internal/domain/repository"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
)

// orderRowSelect converts the cents columns to decimals so the scanned row
// matches the wire format without another mapping step.
const orderRowSelect = `
	SELECT
		o.order_id,
		o.customer_id,
		o.order_type,
		o.order_date,
		o.delivery_date,
		o.delivery_time,
		o.total_amount / 100.0 AS total_amount,
		o.advance_payment / 100.0 AS advance_payment,
		o.remaining_amount / 100.0 AS remaining_amount,
		o.delivery_address,
		o.notes,
		o.status,
		c.name AS customer_name
	FROM orders o
	JOIN customers c ON o.customer_id = c.customer_id`

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems runs the whole order-creation write set in one transaction:
// optional new customer, the order row, its line items, and the initial
// advance payment. A failure at any step rolls everything back.
func (r *orderRepository) CreateWithItems(ctx context.Context, params *domainRepo.CreateOrderParams) (int64, error) {
	var orderID int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customerID := params.CustomerID
		if params.NewCustomer != nil {
			customer := entity.Customer{
				Name:    params.NewCustomer.Name,
				Phone:   params.NewCustomer.Phone,
				Address: "",
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
			customerID = customer.CustomerID
		}

		now := time.Now()
		order := entity.Order{
			CustomerID:      customerID,
			OrderType:       params.OrderType,
			OrderDate:       now,
			DeliveryDate:    params.DeliveryDate,
			DeliveryTime:    params.DeliveryTime,
			TotalAmount:     params.TotalAmount,
			AdvancePayment:  params.AdvancePayment,
			RemainingAmount: params.TotalAmount - params.AdvancePayment,
			DeliveryAddress: params.DeliveryAddress,
			Notes:           params.Notes,
			Status:          enum.OrderStatus(params.Status),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.OrderID

		if len(params.Items) > 0 {
			items := params.Items
			for i := range items {
				items[i].OrderID = order.OrderID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		if params.AdvancePayment > 0 {
			payment := entity.Payment{
				OrderID:     order.OrderID,
				Amount:      params.AdvancePayment,
				PaymentDate: now,
				Notes:       entity.InitialAdvanceNote,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

// ApplyPayment inserts the payment row and adjusts the order balance in a
// single relative UPDATE. The CASE recomputes status from the pre-update
// column values, re-expressing the post-update arithmetic inline, so no
// read-after-write happens inside the statement.
func (r *orderRepository) ApplyPayment(ctx context.Context, orderID, amountCents int64, notes string) (*domainRepo.OrderRow, error) {
	var row domainRepo.OrderRow

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment := entity.Payment{
			OrderID:     orderID,
			Amount:      amountCents,
			PaymentDate: time.Now(),
			Notes:       notes,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		res := tx.Exec(`
			UPDATE orders
			SET remaining_amount = remaining_amount - ?,
			    advance_payment = advance_payment + ?,
			    status = CASE
			        WHEN remaining_amount - ? <= 0 THEN 'Fulfilled'
			        WHEN advance_payment + ? > 0 THEN 'Partially_Paid'
			        ELSE 'Pending'
			    END
			WHERE order_id = ?`,
			amountCents, amountCents, amountCents, amountCents, orderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NewNotFoundError("Order")
		}

		return tx.Raw(orderRowSelect+` WHERE o.order_id = ?`, orderID).Scan(&row).Error
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *orderRepository) GetWithItems(ctx context.Context, orderID int64) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.MenuItem").
		First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domainRepo.OrderRow, error) {
	rows := []domainRepo.OrderRow{}
	err := r.db.WithContext(ctx).
		Raw(orderRowSelect+` WHERE o.customer_id = ? ORDER BY o.order_date DESC`, customerID).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) Pending(ctx context.Context, search string) ([]domainRepo.OrderRow, error) {
	rows := []domainRepo.OrderRow{}
	term := "%" + search + "%"
	err := r.db.WithContext(ctx).
		Raw(orderRowSelect+`
			WHERE o.remaining_amount > 0
			AND (CAST(o.order_id AS TEXT) ILIKE ? OR c.name ILIKE ?)
			ORDER BY o.order_date DESC`, term, term).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) Items(ctx context.Context, orderID int64) ([]domainRepo.OrderItemRow, error) {
	rows := []domainRepo.OrderItemRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			oi.order_item_id,
			oi.order_id,
			oi.item_id,
			oi.custom_item_name,
			oi.quantity,
			oi.unit_price / 100.0 AS unit_price,
			mi.name AS menu_item_name
		FROM order_items oi
		LEFT JOIN menu_items mi ON oi.item_id = mi.item_id
		WHERE oi.order_id = ?`, orderID).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) Payments(ctx context.Context, orderID int64) ([]entity.Payment, error) {
	payments := []entity.Payment{}
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}
