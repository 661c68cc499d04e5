package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GetCustomers searches customers by name or phone substring.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.customerService.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, customers)
}

// GetCustomerHistory returns per-customer order aggregates, most recent
// activity first.
func (h *CustomerHandler) GetCustomerHistory(c *gin.Context) {
	history, err := h.customerService.History(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, history)
}
