package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/request"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// GetExpenses lists expenses, newest first.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	expenses, err := h.expenseService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, expenses)
}

// AddExpense records one expense.
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	var req request.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "Invalid request body")
		return
	}

	err := h.expenseService.Add(c.Request.Context(), &service.AddExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		ExpenseDate: req.ExpenseDate,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, nil)
}
