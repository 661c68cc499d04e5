package service

import (
	"context"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	"github.com/janipakwan/pakwan-api/internal/domain/repository"
)

// CatalogService exposes the read-only menu catalog
type CatalogService struct {
	menuItemRepo repository.MenuItemRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(menuItemRepo repository.MenuItemRepository) *CatalogService {
	return &CatalogService{menuItemRepo: menuItemRepo}
}

// MenuItems lists the catalog ordered by name.
func (s *CatalogService) MenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuItemRepo.List(ctx)
}
