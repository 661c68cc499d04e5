package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardStats returns today's order count, sales, outstanding
// receivables and today's expenses as one flat object.
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, stats)
}
