package gormstore

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/snapshot"
	"crm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB, pollInterval time.Duration) repository.SaleRepository {
	return &saleRepository{
		db:           db,
		pollInterval: pollInterval,
	}
}

// CreateSale persists a new sale.
func (repo *saleRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.CreatedAt = saleM.CreatedAt

	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (repo *saleRepository) FindSaleByID(ctx context.Context, id string) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&saleM), nil
}

// FindSalesByUser retrieves a user's sales, newest first.
func (repo *saleRepository) FindSalesByUser(ctx context.Context, userID string, limit int) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sales by user")
	}

	return toSaleDomains(saleModels), nil
}

// FindSalesCreatedBetween retrieves a user's sales created in [from, to).
func (repo *saleRepository) FindSalesCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from.UTC(), to.UTC()).
		Order("created_at DESC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sales by creation time")
	}

	return toSaleDomains(saleModels), nil
}

// UpdateSale overwrites the mutable fields of a sale.
func (repo *saleRepository) UpdateSale(ctx context.Context, sale *entity.Sale) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ?", sale.ID).
		Updates(map[string]any{
			"client_id":   sale.ClientID,
			"description": sale.Description,
			"total":       sale.Total,
			"status":      string(sale.Status),
			"date":        sale.Date,
			"time":        sale.Time,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sale")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// DeleteSale removes a sale.
func (repo *saleRepository) DeleteSale(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SaleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete sale")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// WatchSalesByUser polls a user's sales for changes.
func (repo *saleRepository) WatchSalesByUser(_ context.Context, userID string) (snapshot.Iterator[*entity.Sale], error) {
	return newPollingIterator(repo.pollInterval, func(ctx context.Context) ([]*entity.Sale, error) {
		return repo.FindSalesByUser(ctx, userID, 0)
	}), nil
}

func toSaleDomain(data *model.SaleModel) *entity.Sale {
	return &entity.Sale{
		ID:          data.ID,
		ClientID:    data.ClientID,
		Description: data.Description,
		Total:       data.Total,
		Status:      entity.SaleStatus(data.Status),
		Date:        data.Date,
		Time:        data.Time,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
	}
}

func toSaleDomains(models []*model.SaleModel) []*entity.Sale {
	sales := make([]*entity.Sale, 0, len(models))
	for _, saleM := range models {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales
}

func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	return &model.SaleModel{
		ID:          data.ID,
		ClientID:    data.ClientID,
		Description: data.Description,
		Total:       data.Total,
		Status:      string(data.Status),
		Date:        data.Date,
		Time:        data.Time,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt.UTC(), // range queries compare stored values
	}
}
