// Package firebaseapp builds the Firebase application shared by Firestore,
// Auth and Cloud Messaging.
package firebaseapp

import (
	"context"
	"log/slog"

	"crm/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Firebase app
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app. It returns nil when no project is
// configured, leaving Firebase-backed components unavailable.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Info("Firebase not configured")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}
