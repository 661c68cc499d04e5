package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/janipakwan/pakwan-api/internal/domain/enum"
)

func TestOrderMarshalJSONAmounts(t *testing.T) {
	order := Order{
		OrderID:         42,
		CustomerID:      7,
		OrderType:       "Delivery",
		OrderDate:       time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		TotalAmount:     125050,
		AdvancePayment:  50000,
		RemainingAmount: 75050,
		Status:          enum.OrderStatusPartiallyPaid,
	}

	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("marshal order: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal order json: %v", err)
	}

	if got := decoded["total_amount"].(float64); got != 1250.50 {
		t.Errorf("total_amount = %v, want 1250.50", got)
	}
	if got := decoded["advance_payment"].(float64); got != 500.00 {
		t.Errorf("advance_payment = %v, want 500.00", got)
	}
	if got := decoded["remaining_amount"].(float64); got != 750.50 {
		t.Errorf("remaining_amount = %v, want 750.50", got)
	}
	if got := decoded["status"].(string); got != "Partially_Paid" {
		t.Errorf("status = %q, want Partially_Paid", got)
	}
}

func TestOrderItemMarshalJSONUnitPrice(t *testing.T) {
	name := "Seekh Kabab"
	item := OrderItem{
		OrderItemID:    1,
		OrderID:        42,
		CustomItemName: &name,
		Quantity:       12,
		UnitPrice:      7550,
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal order item: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal item json: %v", err)
	}

	if got := decoded["unit_price"].(float64); got != 75.50 {
		t.Errorf("unit_price = %v, want 75.50", got)
	}
	if got := decoded["custom_item_name"].(string); got != name {
		t.Errorf("custom_item_name = %q, want %q", got, name)
	}
	if decoded["item_id"] != nil {
		t.Errorf("item_id = %v, want null for custom lines", decoded["item_id"])
	}
}

func TestMenuItemMarshalJSONPrice(t *testing.T) {
	item := MenuItem{ItemID: 3, Name: "Chicken Biryani", Price: 35000}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal menu item: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal menu item json: %v", err)
	}

	if got := decoded["price"].(float64); got != 350.00 {
		t.Errorf("price = %v, want 350.00", got)
	}
}
