package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	catalogService *service.CatalogService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalogService *service.CatalogService) *MenuHandler {
	return &MenuHandler{catalogService: catalogService}
}

// GetMenuItems lists the catalog ordered by name.
func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	items, err := h.catalogService.MenuItems(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.JSON(c, items)
}
