package enum

import "database/sql/driver"

// OrderStatus represents the payment status of an order. It is stored as the
// label itself so rows read back exactly what the frontend displays.
type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "Pending"
	OrderStatusPartiallyPaid OrderStatus = "Partially_Paid"
	OrderStatusFulfilled     OrderStatus = "Fulfilled"
)

// DeriveOrderStatus recomputes an order's status from its balance: Fulfilled
// once nothing remains (overpayments included), Partially_Paid while some money
// has been received, and Pending otherwise. It is the canonical statement of
// the rule the payment UPDATE's CASE expression mirrors in SQL.
func DeriveOrderStatus(remainingCents, advanceCents int64) OrderStatus {
	switch {
	case remainingCents <= 0:
		return OrderStatusFulfilled
	case advanceCents > 0:
		return OrderStatusPartiallyPaid
	default:
		return OrderStatusPending
	}
}

// Valid reports whether s is one of the known status labels.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPartiallyPaid, OrderStatusFulfilled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = OrderStatus(v)
	case []byte:
		*s = OrderStatus(v)
	}
	return nil
}
