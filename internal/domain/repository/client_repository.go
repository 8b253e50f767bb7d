package repository

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrClientNotFound is returned when a client is not found.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines the interface for client persistence.
type ClientRepository interface {
	CreateClient(ctx context.Context, client *entity.Client) error
	FindClientByID(ctx context.Context, id string) (*entity.Client, error)

	// FindAllClients retrieves every client ordered by name.
	FindAllClients(ctx context.Context) ([]*entity.Client, error)

	UpdateClient(ctx context.Context, client *entity.Client) error
	DeleteClient(ctx context.Context, id string) error
}
