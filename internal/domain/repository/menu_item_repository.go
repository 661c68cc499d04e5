package repository

import (
	"context"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
)

// MenuItemRepository defines the interface for menu catalog access
type MenuItemRepository interface {
	List(ctx context.Context) ([]entity.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []entity.MenuItem) error
}
