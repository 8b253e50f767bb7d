package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid identity token")

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	UserID string
	Email  string
}

// IdentityVerifier validates bearer tokens issued by the identity provider.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*Identity, error)
}
