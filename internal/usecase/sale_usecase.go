package usecase

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/snapshot"
)

// SaleInput holds the fields of a new sale
type SaleInput struct {
	ClientID    string            `json:"client_id"`
	Description string            `json:"description" validate:"required"`
	Total       float64           `json:"total" validate:"gte=0"`
	Status      entity.SaleStatus `json:"status"`
	Date        string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        string            `json:"time"`
}

// SaleUsecase manages the sales of a user
type SaleUsecase interface {
	CreateSale(ctx context.Context, userID string, input *SaleInput) (*entity.Sale, error)
	GetSale(ctx context.Context, userID, saleID string) (*entity.Sale, error)

	// ListSales returns the newest sales first; limit <= 0 returns all
	ListSales(ctx context.Context, userID string, limit int) ([]*entity.Sale, error)

	UpdateSale(ctx context.Context, userID, saleID string, patch *entity.SalePatch) (*entity.Sale, error)
	DeleteSale(ctx context.Context, userID, saleID string) error
	WatchSales(ctx context.Context, userID string) (snapshot.Iterator[*entity.Sale], error)
}
