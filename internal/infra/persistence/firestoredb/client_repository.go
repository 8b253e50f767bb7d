package firestoredb

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type clientRepository struct {
	client *firestore.Client
}

// NewClientRepository is the constructor for the Firestore client repository.
func NewClientRepository(client *firestore.Client) repository.ClientRepository {
	return &clientRepository{client: client}
}

func (repo *clientRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionClients)
}

func (repo *clientRepository) CreateClient(ctx context.Context, client *entity.Client) error {
	doc := repo.collection().NewDoc()
	if client.ID != "" {
		doc = repo.collection().Doc(client.ID)
	}

	if _, err := doc.Create(ctx, client); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = doc.ID

	return nil
}

func (repo *clientRepository) FindClientByID(ctx context.Context, id string) (*entity.Client, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return decodeClient(snap)
}

func (repo *clientRepository) FindAllClients(ctx context.Context) ([]*entity.Client, error) {
	return queryAll(ctx, repo.collection().OrderBy("nombre", firestore.Asc), decodeClient)
}

func (repo *clientRepository) UpdateClient(ctx context.Context, client *entity.Client) error {
	_, err := repo.collection().Doc(client.ID).Update(ctx, []firestore.Update{
		{Path: "nombre", Value: client.Name},
		{Path: "email", Value: client.Email},
		{Path: "telefono", Value: client.Phone},
		{Path: "nota", Value: client.Note},
		{Path: "avatarUrl", Value: client.AvatarURL},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrClientNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update client")
	}

	return nil
}

func (repo *clientRepository) DeleteClient(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrClientNotFound
		}

		return errors.Wrap(err, "failed to delete client")
	}

	return nil
}

func decodeClient(snap *firestore.DocumentSnapshot) (*entity.Client, error) {
	var client entity.Client
	if err := snap.DataTo(&client); err != nil {
		return nil, errors.Wrapf(err, "failed to decode client %s", snap.Ref.ID)
	}
	client.ID = snap.Ref.ID

	return &client, nil
}
