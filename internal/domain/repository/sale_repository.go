package repository

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/snapshot"

	"github.com/pkg/errors"
)

// ErrSaleNotFound is returned when a sale is not found.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the interface for sale persistence.
type SaleRepository interface {
	// CreateSale persists a new sale.
	CreateSale(ctx context.Context, sale *entity.Sale) error

	// FindSaleByID retrieves a sale by its ID.
	FindSaleByID(ctx context.Context, id string) (*entity.Sale, error)

	// FindSalesByUser retrieves a user's sales, newest first. A limit <= 0 returns all of them.
	FindSalesByUser(ctx context.Context, userID string, limit int) ([]*entity.Sale, error)

	// FindSalesCreatedBetween retrieves a user's sales created in [from, to).
	FindSalesCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.Sale, error)

	// UpdateSale overwrites the mutable fields of an existing sale.
	UpdateSale(ctx context.Context, sale *entity.Sale) error

	// DeleteSale removes a sale.
	DeleteSale(ctx context.Context, id string) error

	// WatchSalesByUser opens a live query over a user's sales, newest first.
	WatchSalesByUser(ctx context.Context, userID string) (snapshot.Iterator[*entity.Sale], error)
}
