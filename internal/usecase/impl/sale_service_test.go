package impl

import (
	"context"
	"testing"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	mockRepo "crm/internal/mocks/repository"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type saleServiceFixtures struct {
	service  *saleService
	saleRepo *mockRepo.MockSaleRepository
}

func createTestSaleService(t *testing.T) saleServiceFixtures {
	saleRepo := mockRepo.NewMockSaleRepository(t)

	svc := NewSaleService(saleRepo).(*saleService)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	return saleServiceFixtures{
		service:  svc,
		saleRepo: saleRepo,
	}
}

func TestSaleService_CreateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to pending", func(t *testing.T) {
		fx := createTestSaleService(t)
		fx.saleRepo.EXPECT().
			CreateSale(ctx, mock.MatchedBy(func(s *entity.Sale) bool {
				return s.Status == entity.SaleStatusPending && s.UserID == "user-1"
			})).
			Return(nil)

		sale, err := fx.service.CreateSale(ctx, "user-1", &usecase.SaleInput{Description: "Licencia", Total: 1200})
		require.NoError(t, err)
		assert.Equal(t, 1200.0, sale.Total)
	})

	tests := []struct {
		name  string
		input *usecase.SaleInput
		want  error
	}{
		{"missing description", &usecase.SaleInput{Total: 10}, domainerrors.ErrValidationFailed},
		{"negative total", &usecase.SaleInput{Description: "x", Total: -1}, domainerrors.ErrValidationFailed},
		{"unknown status", &usecase.SaleInput{Description: "x", Status: "regalado"}, domainerrors.ErrInvalidStatus},
		{"bad date", &usecase.SaleInput{Description: "x", Date: "ayer"}, domainerrors.ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSaleService(t)

			_, err := fx.service.CreateSale(ctx, "user-1", tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSaleService_UpdateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("marks paid", func(t *testing.T) {
		fx := createTestSaleService(t)
		fx.saleRepo.EXPECT().FindSaleByID(ctx, "s-1").
			Return(&entity.Sale{ID: "s-1", UserID: "user-1", Description: "Licencia", Status: entity.SaleStatusPending}, nil)
		fx.saleRepo.EXPECT().UpdateSale(ctx, mock.Anything).Return(nil)

		paid := entity.SaleStatusPaid
		sale, err := fx.service.UpdateSale(ctx, "user-1", "s-1", &entity.SalePatch{Status: &paid})
		require.NoError(t, err)
		assert.Equal(t, entity.SaleStatusPaid, sale.Status)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestSaleService(t)
		fx.saleRepo.EXPECT().FindSaleByID(ctx, "s-1").Return(&entity.Sale{ID: "s-1", UserID: "user-2"}, nil)

		_, err := fx.service.UpdateSale(ctx, "user-1", "s-1", &entity.SalePatch{})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestSaleService_DeleteSale_MissingIsNoop(t *testing.T) {
	ctx := context.Background()
	fx := createTestSaleService(t)

	fx.saleRepo.EXPECT().FindSaleByID(ctx, "s-1").Return(nil, repository.ErrSaleNotFound)

	assert.NoError(t, fx.service.DeleteSale(ctx, "user-1", "s-1"))
}

func TestSaleService_ListSales(t *testing.T) {
	ctx := context.Background()
	fx := createTestSaleService(t)

	sales := []*entity.Sale{{ID: "s-2"}, {ID: "s-1"}}
	fx.saleRepo.EXPECT().FindSalesByUser(ctx, "user-1", 2).Return(sales, nil)

	got, err := fx.service.ListSales(ctx, "user-1", 2)
	require.NoError(t, err)
	assert.Equal(t, sales, got)
}
