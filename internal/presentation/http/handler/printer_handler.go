package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/request"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// PrintReceipt renders an order receipt and sends it to the printer.
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	var req request.PrintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "Invalid request body")
		return
	}

	if err := h.printerService.PrintOrderReceipt(c.Request.Context(), req.OrderID); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, nil)
}

// GetPrinterStatus reports whether the configured printer is reachable.
func (h *PrinterHandler) GetPrinterStatus(c *gin.Context) {
	response.JSON(c, h.printerService.Status(c.Request.Context()))
}
