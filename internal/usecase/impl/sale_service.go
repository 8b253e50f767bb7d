package impl

import (
	"context"
	"strings"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/snapshot"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

type saleService struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewSaleService creates a new sale service instance
func NewSaleService(saleRepo repository.SaleRepository) usecase.SaleUsecase {
	return &saleService{
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

func (s *saleService) CreateSale(ctx context.Context, userID string, input *usecase.SaleInput) (*entity.Sale, error) {
	sale := &entity.Sale{
		ClientID:    input.ClientID,
		Description: strings.TrimSpace(input.Description),
		Total:       input.Total,
		Status:      input.Status,
		Date:        input.Date,
		Time:        input.Time,
		UserID:      userID,
		CreatedAt:   s.now(),
	}
	if sale.Status == "" {
		sale.Status = entity.SaleStatusPending
	}

	if err := validateSale(sale); err != nil {
		return nil, err
	}

	if err := s.saleRepo.CreateSale(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to create sale")
	}

	return sale, nil
}

func (s *saleService) GetSale(ctx context.Context, userID, saleID string) (*entity.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	if sale.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, userID string, limit int) ([]*entity.Sale, error) {
	sales, err := s.saleRepo.FindSalesByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sales by user")
	}

	return sales, nil
}

func (s *saleService) UpdateSale(ctx context.Context, userID, saleID string, patch *entity.SalePatch) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, userID, saleID)
	if err != nil {
		return nil, err
	}

	patch.Apply(sale)
	sale.Description = strings.TrimSpace(sale.Description)

	if err := validateSale(sale); err != nil {
		return nil, err
	}

	if err := s.saleRepo.UpdateSale(ctx, sale); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to update sale")
	}

	return sale, nil
}

// DeleteSale removes a sale owned by userID; missing sales are not an error
func (s *saleService) DeleteSale(ctx context.Context, userID, saleID string) error {
	if _, err := s.GetSale(ctx, userID, saleID); err != nil {
		if errors.Is(err, domainerrors.ErrSaleNotFound) {
			return nil
		}

		return err
	}

	err := s.saleRepo.DeleteSale(ctx, saleID)
	if err != nil && !errors.Is(err, repository.ErrSaleNotFound) {
		return errors.Wrap(err, "failed to delete sale")
	}

	return nil
}

func (s *saleService) WatchSales(ctx context.Context, userID string) (snapshot.Iterator[*entity.Sale], error) {
	it, err := s.saleRepo.WatchSalesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch sales")
	}

	return it, nil
}

func validateSale(sale *entity.Sale) error {
	if sale.Description == "" {
		return domainerrors.ErrValidationFailed.WithDetails("description is required")
	}
	if sale.Total < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("total cannot be negative")
	}
	if !sale.Status.IsValid() {
		return domainerrors.ErrInvalidStatus.WithDetails(string(sale.Status))
	}
	if sale.Date != "" {
		if err := validateDate(sale.Date); err != nil {
			return err
		}
	}

	return nil
}
