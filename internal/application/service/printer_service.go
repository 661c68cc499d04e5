package service

import (
	"context"
	"fmt"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
	"github.com/janipakwan/pakwan-api/pkg/printer"
)

// PrinterService renders order receipts and sends them to the thermal printer.
type PrinterService struct {
	device    printer.Printer
	orderRepo repository.OrderRepository
	shopName  string
}

// NewPrinterService creates a new printer service
func NewPrinterService(device printer.Printer, orderRepo repository.OrderRepository, shopName string) *PrinterService {
	return &PrinterService{
		device:    device,
		orderRepo: orderRepo,
		shopName:  shopName,
	}
}

// PrinterStatus reports whether the configured printer is reachable.
type PrinterStatus struct {
	Connected bool `json:"connected"`
}

// Status checks printer connectivity.
func (s *PrinterService) Status(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{Connected: s.device.IsConnected()}
}

// PrintOrderReceipt looks up an order with its items and sends a formatted
// receipt to the printer.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID int64) error {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	receipt := FormatOrderReceipt(order, s.shopName)
	return s.device.Print(receipt)
}

// FormatOrderReceipt renders an order as an ESC/POS receipt. Catalog lines use
// the menu item name; custom lines use their stored name.
func FormatOrderReceipt(order *entity.Order, shopName string) []byte {
	doc := printer.NewDocument(32)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(shopName).
		SetFontSize(printer.FontNormal).
		Separator('=')

	doc.SetAlign(printer.AlignLeft).
		KeyValue("Order", fmt.Sprintf("#%d", order.OrderID)).
		KeyValue("Date", order.OrderDate.Format("02 Jan 2006 15:04")).
		KeyValue("Customer", order.Customer.Name)

	if order.DeliveryDate != "" {
		doc.KeyValue("Delivery", order.DeliveryDate+" "+order.DeliveryTime)
	}
	doc.Separator('-')

	for _, item := range order.Items {
		name := itemName(item)
		total := float64(item.UnitPrice*int64(item.Quantity)) / 100
		doc.ItemLine(item.Quantity, name, fmt.Sprintf("%.2f", total))
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("Total", fmt.Sprintf("%.2f", float64(order.TotalAmount)/100)).
		SetBold(false).
		KeyValue("Advance", fmt.Sprintf("%.2f", float64(order.AdvancePayment)/100)).
		KeyValue("Remaining", fmt.Sprintf("%.2f", float64(order.RemainingAmount)/100))

	if order.Notes != "" {
		doc.Separator('-').Text(order.Notes)
	}

	doc.FeedLines(1).
		SetAlign(printer.AlignCenter).
		Text("Thank you!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

func itemName(item entity.OrderItem) string {
	if item.MenuItem != nil && item.MenuItem.Name != "" {
		return item.MenuItem.Name
	}
	if item.CustomItemName != nil {
		return *item.CustomItemName
	}
	return "Item"
}
