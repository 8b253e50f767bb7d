package auth

import (
	"context"

	"crm/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// firebaseVerifier checks Firebase Authentication ID tokens.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates a verifier from the Firebase app.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.IdentityVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	email, _ := token.Claims["email"].(string)

	return &service.Identity{UserID: token.UID, Email: email}, nil
}
