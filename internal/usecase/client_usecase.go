package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// ClientInput holds the fields of a new client
type ClientInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Note      string `json:"note"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// ClientUsecase manages the shared client directory
type ClientUsecase interface {
	CreateClient(ctx context.Context, input *ClientInput) (*entity.Client, error)
	GetClient(ctx context.Context, clientID string) (*entity.Client, error)
	ListClients(ctx context.Context) ([]*entity.Client, error)
	UpdateClient(ctx context.Context, clientID string, patch *entity.ClientPatch) (*entity.Client, error)
	DeleteClient(ctx context.Context, clientID string) error

	// ContactQR renders the client as a vCard QR code (PNG)
	ContactQR(ctx context.Context, clientID string) ([]byte, error)
}
