package service

import (
	"context"

	"github.com/janipakwan/pakwan-api/internal/domain/repository"
)

// DashboardService handles dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// Stats returns today's order count, sales, outstanding receivables and
// today's expenses in one shot.
func (s *DashboardService) Stats(ctx context.Context) (*repository.DashboardStats, error) {
	return s.analyticsRepo.GetDashboardStats(ctx)
}
