package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/janipakwan/pakwan-api/internal/domain/entity"
	domainRepo "github.com/janipakwan/pakwan-api/internal/domain/repository"
)

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	items := []entity.MenuItem{}
	err := r.db.WithContext(ctx).Order("name").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.MenuItem{}).Count(&count).Error
	return count, err
}

func (r *menuItemRepository) CreateBatch(ctx context.Context, items []entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}
