package main

import (
	"context"
	"log/slog"
	"os"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/delivery/api"
	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/router/handler"
	"crm/internal/delivery/jobs"
	"crm/internal/domain/service"
	"crm/internal/infra/auth"
	"crm/internal/infra/calendar"
	"crm/internal/infra/firebaseapp"
	logs "crm/internal/infra/log"
	"crm/internal/infra/notification"
	"crm/internal/infra/persistence"
	"crm/internal/infra/pubsub"
	"crm/internal/infra/qrcode"
	"crm/internal/infra/reminder"
	"crm/internal/usecase"
	"crm/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			jobs.Register,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebaseapp.NewApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewIdentityVerifier,
			notification.NewPushService,
			calendar.NewICSEncoder,
			newQRCodeService,
			reminder.NewScheduler,
			func(s *reminder.Scheduler) service.ReminderScheduler { return s },
			func(s *reminder.Scheduler) jobs.RecurringScheduler { return s },
			// Direct delivery hands fired reminders straight to the delivery use case
			func(uc usecase.ReminderDeliveryUsecase) service.ReminderHandler { return uc },
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEventService,
			impl.NewNotificationService,
			impl.NewClientService,
			impl.NewSaleService,
			impl.NewDashboardService,
			impl.NewDeviceService,
			impl.NewReminderService,
			impl.NewReminderDeliveryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventHandler,
			handler.NewNotificationHandler,
			handler.NewClientHandler,
			handler.NewSaleHandler,
			handler.NewDeviceHandler,
			handler.NewDashboardHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
