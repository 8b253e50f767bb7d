package impl

import (
	"context"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

// latestSalesLimit is the number of sales listed on the dashboard
const latestSalesLimit = 5

type dashboardService struct {
	eventRepo repository.EventRepository
	saleRepo  repository.SaleRepository
	loc       *time.Location
	now       func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(eventRepo repository.EventRepository, saleRepo repository.SaleRepository, cfg *config.Config) usecase.DashboardUsecase {
	return &dashboardService{
		eventRepo: eventRepo,
		saleRepo:  saleRepo,
		loc:       cfg.Reminder.Location(),
		now:       time.Now,
	}
}

// GetSummary gathers today's workload and sales of the user
func (s *dashboardService) GetSummary(ctx context.Context, userID string) (*usecase.DashboardSummary, error) {
	now := s.now().In(s.loc)
	today := now.Format(entity.DateLayout)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	pending, err := s.eventRepo.CountEventsByDate(ctx, userID, today)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's events")
	}

	events, err := s.eventRepo.FindEventsByDate(ctx, userID, today)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find today's events")
	}

	todaySales, err := s.saleRepo.FindSalesCreatedBetween(ctx, userID, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find today's sales")
	}

	latest, err := s.saleRepo.FindSalesByUser(ctx, userID, latestSalesLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest sales")
	}

	var total float64
	for _, sale := range todaySales {
		if sale.Status == entity.SaleStatusCancelled {
			continue
		}
		total += sale.Total
	}

	return &usecase.DashboardSummary{
		Date:            today,
		PendingTasks:    pending,
		SalesTotalToday: total,
		TodayEvents:     events,
		LatestSales:     latest,
	}, nil
}
