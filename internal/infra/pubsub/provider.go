package pubsub

import (
	"context"
	"log/slog"

	"crm/config"
	"crm/internal/domain/constants"
	"crm/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops reminders, used by processes that never fire any
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishReminderEvent(ctx context.Context, event *service.ReminderEvent) error {
	p.logger.Warn("[NoopPubSub] No reminder handler available, dropping reminder",
		slog.String("reminder_id", event.ReminderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Handler service.ReminderHandler `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration.
// Without a provider, reminders are delivered in-process.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := constants.PubSubProviderDirect
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var publisher service.EventPublisher
	var err error

	switch provider {
	case constants.PubSubProviderDirect:
		if params.Handler == nil {
			logger.Info("PubSub not configured and no reminder handler, using no-op publisher")

			return &noopPublisher{logger: logger}, nil
		}
		logger.Info("Using direct in-process reminder delivery")

		publisher = NewDirectPublisher(params.Handler, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
