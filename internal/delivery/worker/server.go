// Package worker serves the Pub/Sub push endpoint that delivers fired reminders.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/delivery/middleware"
	"crm/internal/delivery/worker/handler"
	"crm/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushPath is where Pub/Sub subscriptions push reminder messages.
const PushPath = "/push"

type workerServer struct {
	logger     *slog.Logger
	httpServer *http.Server
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker server; it listens once Serve is called.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	timeouts := params.Cfg.HTTP.Timeouts

	srv := &workerServer{
		logger: params.Logger,
		httpServer: &http.Server{
			Addr:              net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
			Handler:           newRouter(params),
			ReadTimeout:       timeouts.ReadTimeout,
			ReadHeaderTimeout: timeouts.ReadHeaderTimeout,
			WriteTimeout:      timeouts.WriteTimeout,
			IdleTimeout:       timeouts.IdleTimeout,
		},
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newRouter(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(PushPath, params.PushHandler.HandlePush)

	return e
}

func (s *workerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.httpServer.Shutdown(shutdownCtx))
}
