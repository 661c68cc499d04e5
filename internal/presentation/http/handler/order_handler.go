package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/request"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/response"
)

// OrderHandler handles order and payment HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder creates an order with its items and optional inline customer.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "Invalid request body")
		return
	}

	input := &service.CreateOrderInput{
		IsAddingNewCustomer: req.IsAddingNewCustomer,
		NewCustomerName:     req.NewCustomer.Name,
		NewCustomerPhone:    req.NewCustomer.Phone,
		CustomerID:          req.CustomerID,
		OrderType:           req.Order.OrderType,
		DeliveryDate:        req.Order.DeliveryDate,
		DeliveryTime:        req.Order.DeliveryTime,
		TotalAmount:         req.Order.TotalAmount,
		AdvancePayment:      req.Order.AdvancePayment,
		DeliveryAddress:     req.Order.DeliveryAddress,
		Notes:               req.Order.Notes,
		Status:              req.Order.Status,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ItemID:         item.ItemID,
			CustomItemName: item.CustomItemName,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
		})
	}

	orderID, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"orderId": orderID})
}

// AddPayment records a payment and returns the updated order row.
func (h *OrderHandler) AddPayment(c *gin.Context) {
	var req request.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "Invalid request body")
		return
	}

	updated, err := h.orderService.ApplyPayment(c.Request.Context(), req.OrderID, req.Amount, req.Notes)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"updatedOrder": updated})
}

// GetCustomerOrders lists one customer's orders, newest first. An absent or
// non-numeric id matches no orders and reads as an empty list.
func (h *OrderHandler) GetCustomerOrders(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customerId"), 10, 64)
	if err != nil {
		response.JSON(c, []interface{}{})
		return
	}

	orders, err := h.orderService.CustomerOrders(c.Request.Context(), customerID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, orders)
}

// GetPendingOrders lists orders with money outstanding, optionally filtered by
// order id or customer name.
func (h *OrderHandler) GetPendingOrders(c *gin.Context) {
	orders, err := h.orderService.PendingOrders(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, orders)
}

// GetOrderItems lists an order's line items. An absent or non-numeric id
// matches no lines and reads as an empty list.
func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Query("orderId"), 10, 64)
	if err != nil {
		response.JSON(c, []interface{}{})
		return
	}

	items, err := h.orderService.OrderItems(c.Request.Context(), orderID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, items)
}

// GetOrderPayments lists an order's payment history, newest first. An absent
// or non-numeric id matches no payments and reads as an empty list.
func (h *OrderHandler) GetOrderPayments(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Query("orderId"), 10, 64)
	if err != nil {
		response.JSON(c, []interface{}{})
		return
	}

	payments, err := h.orderService.OrderPayments(c.Request.Context(), orderID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, payments)
}
