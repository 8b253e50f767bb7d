package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// DashboardSummary is the home screen of a user
type DashboardSummary struct {
	Date            string          `json:"date"`
	PendingTasks    int             `json:"pending_tasks"`
	SalesTotalToday float64         `json:"sales_total_today"`
	TodayEvents     []*entity.Event `json:"today_events"`
	LatestSales     []*entity.Sale  `json:"latest_sales"`
}

// DashboardUsecase aggregates the figures shown on the home screen
type DashboardUsecase interface {
	GetSummary(ctx context.Context, userID string) (*DashboardSummary, error)
}
