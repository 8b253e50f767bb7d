package auth

import (
	"context"
	"log/slog"

	"crm/config"
	"crm/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the IdentityVerifier, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewIdentityVerifier selects the verifier configured in auth.provider
func NewIdentityVerifier(params Params) (service.IdentityVerifier, error) {
	switch params.Config.Auth.Provider {
	case config.AuthProviderFirebase:
		if params.App == nil {
			return nil, errors.New("firebase auth provider requires the firebase section")
		}
		params.Logger.Info("Verifying Firebase ID tokens")

		return NewFirebaseVerifier(params.Ctx, params.App)

	case config.AuthProviderJWT:
		params.Logger.Warn("Verifying locally signed JWTs, do not use in production")

		return NewJWTVerifier(params.Config.SecretKey.Access)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", params.Config.Auth.Provider)
	}
}
