package impl

import (
	"context"
	"strings"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

type clientService struct {
	clientRepo    repository.ClientRepository
	qrcodeService service.QRCodeService
	now           func() time.Time
}

// NewClientService creates a new client service instance
func NewClientService(clientRepo repository.ClientRepository, qrcodeService service.QRCodeService) usecase.ClientUsecase {
	return &clientService{
		clientRepo:    clientRepo,
		qrcodeService: qrcodeService,
		now:           time.Now,
	}
}

func (s *clientService) CreateClient(ctx context.Context, input *usecase.ClientInput) (*entity.Client, error) {
	client := &entity.Client{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Note:      input.Note,
		AvatarURL: input.AvatarURL,
		CreatedAt: s.now(),
	}
	if client.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	if err := s.clientRepo.CreateClient(ctx, client); err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}

	return client, nil
}

func (s *clientService) GetClient(ctx context.Context, clientID string) (*entity.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]*entity.Client, error) {
	clients, err := s.clientRepo.FindAllClients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find clients")
	}

	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, patch *entity.ClientPatch) (*entity.Client, error) {
	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	patch.Apply(client)
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
	}

	if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to update client")
	}

	return client, nil
}

// DeleteClient removes a client; missing clients are not an error
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	err := s.clientRepo.DeleteClient(ctx, clientID)
	if err != nil && !errors.Is(err, repository.ErrClientNotFound) {
		return errors.Wrap(err, "failed to delete client")
	}

	return nil
}

func (s *clientService) ContactQR(ctx context.Context, clientID string) ([]byte, error) {
	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateContactQR(client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contact QR")
	}

	return png, nil
}
