package firestoredb

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/snapshot"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type saleRepository struct {
	client *firestore.Client
}

// NewSaleRepository is the constructor for the Firestore sale repository.
func NewSaleRepository(client *firestore.Client) repository.SaleRepository {
	return &saleRepository{client: client}
}

func (repo *saleRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionSales)
}

func (repo *saleRepository) byUser(userID string) firestore.Query {
	return repo.collection().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
}

func (repo *saleRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	doc := repo.collection().NewDoc()
	if sale.ID != "" {
		doc = repo.collection().Doc(sale.ID)
	}

	if _, err := doc.Create(ctx, sale); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.ID = doc.ID

	return nil
}

func (repo *saleRepository) FindSaleByID(ctx context.Context, id string) (*entity.Sale, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return decodeSale(snap)
}

func (repo *saleRepository) FindSalesByUser(ctx context.Context, userID string, limit int) ([]*entity.Sale, error) {
	q := repo.byUser(userID)
	if limit > 0 {
		q = q.Limit(limit)
	}

	return queryAll(ctx, q, decodeSale)
}

func (repo *saleRepository) FindSalesCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.Sale, error) {
	q := repo.collection().
		Where("userId", "==", userID).
		Where("createdAt", ">=", from).
		Where("createdAt", "<", to).
		OrderBy("createdAt", firestore.Desc)

	return queryAll(ctx, q, decodeSale)
}

func (repo *saleRepository) UpdateSale(ctx context.Context, sale *entity.Sale) error {
	_, err := repo.collection().Doc(sale.ID).Update(ctx, []firestore.Update{
		{Path: "clienteId", Value: sale.ClientID},
		{Path: "descripcion", Value: sale.Description},
		{Path: "total", Value: sale.Total},
		{Path: "estado", Value: string(sale.Status)},
		{Path: "fecha", Value: sale.Date},
		{Path: "hora", Value: sale.Time},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrSaleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update sale")
	}

	return nil
}

func (repo *saleRepository) DeleteSale(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrSaleNotFound
		}

		return errors.Wrap(err, "failed to delete sale")
	}

	return nil
}

func (repo *saleRepository) WatchSalesByUser(ctx context.Context, userID string) (snapshot.Iterator[*entity.Sale], error) {
	return watch(ctx, repo.byUser(userID), decodeSale), nil
}

func decodeSale(snap *firestore.DocumentSnapshot) (*entity.Sale, error) {
	var sale entity.Sale
	if err := snap.DataTo(&sale); err != nil {
		return nil, errors.Wrapf(err, "failed to decode sale %s", snap.Ref.ID)
	}
	sale.ID = snap.Ref.ID

	return &sale, nil
}
