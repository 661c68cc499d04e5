package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/request"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/response"
)

// PartyHandler handles supply-party ledger HTTP requests
type PartyHandler struct {
	partyService *service.PartyService
}

// NewPartyHandler creates a new party handler
func NewPartyHandler(partyService *service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// GetSupplyParties lists every charge row with derived paid/pending amounts.
func (h *PartyHandler) GetSupplyParties(c *gin.Context) {
	supplies, err := h.partyService.Supplies(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, supplies)
}

// GetPartyNames lists distinct supplier names.
func (h *PartyHandler) GetPartyNames(c *gin.Context) {
	names, err := h.partyService.Names(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, names)
}

// GetPartyLedger returns the full charge and payment history for one supplier.
func (h *PartyHandler) GetPartyLedger(c *gin.Context) {
	ledger, err := h.partyService.Ledger(c.Request.Context(), c.Query("partyName"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, ledger)
}

// AddSupplyBill records one billable charge from a supplier.
func (h *PartyHandler) AddSupplyBill(c *gin.Context) {
	var req request.AddSupplyBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "Invalid request body")
		return
	}

	err := h.partyService.AddSupplyBill(c.Request.Context(), &service.AddSupplyBillInput{
		PartyName:   req.PartyName,
		SupplyDate:  req.SupplyDate,
		Details:     req.Details,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, nil)
}

// AddPartyTransaction posts either a payment against a charge row or a new
// charge dated now.
func (h *PartyHandler) AddPartyTransaction(c *gin.Context) {
	var req request.AddPartyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "Invalid request body")
		return
	}

	err := h.partyService.AddTransaction(c.Request.Context(), &service.AddTransactionInput{
		Type:      req.Type,
		PartyID:   req.PartyID,
		PartyName: req.PartyName,
		Amount:    req.Amount,
		Note:      req.Note,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, nil)
}
