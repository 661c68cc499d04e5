package repository

import "context"

// DashboardStats are the four headline figures on the admin dashboard.
// Pending amount is taken from the stored remaining_amount column, not
// recomputed from payment history, so it stays consistent with the
// update-in-place balance model.
type DashboardStats struct {
	OrdersCount    int64   `json:"ordersCount"`
	TodaysSales    float64 `json:"todaysSales"`
	PendingAmount  float64 `json:"pendingAmount"`
	TodaysExpenses float64 `json:"todaysExpenses"`
}

// AnalyticsRepository defines the interface for aggregate report queries
type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
