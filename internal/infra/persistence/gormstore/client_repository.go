package gormstore

import (
	"context"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (repo *clientRepository) CreateClient(ctx context.Context, client *entity.Client) error {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.CreatedAt = clientM.CreatedAt

	return nil
}

func (repo *clientRepository) FindClientByID(ctx context.Context, id string) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

func (repo *clientRepository) FindAllClients(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []*model.ClientModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&clientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

func (repo *clientRepository) UpdateClient(ctx context.Context, client *entity.Client) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":       client.Name,
			"email":      client.Email,
			"phone":      client.Phone,
			"note":       client.Note,
			"avatar_url": client.AvatarURL,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

func (repo *clientRepository) DeleteClient(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ClientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

func toClientDomain(data *model.ClientModel) *entity.Client {
	return &entity.Client{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Note:      data.Note,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
	}
}

func fromClientDomain(data *entity.Client) *model.ClientModel {
	return &model.ClientModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Note:      data.Note,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
	}
}
