package middleware

import (
	"log/slog"
	"strings"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access line per request in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle renders handler errors before logging so the line carries the
// final status. Event streams also get a line when they open.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug || c.Path() == "/health" {
			return next(c)
		}

		req := c.Request()
		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
		stream := strings.HasSuffix(c.Path(), "/stream")
		if stream {
			logger.Debug("Stream opened", slog.String("uri", req.URL.Path))
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("uri", req.URL.Path),
			slog.Int("status", c.Response().Status),
			slog.Int64("bytes", c.Response().Size),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if req.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", req.URL.RawQuery))
		}
		if userID, ok := c.Get(deliverycontext.KeyUserID).(string); ok {
			attrs = append(attrs, slog.String("user_id", userID))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		msg := "HTTP request"
		if stream {
			msg = "Stream closed"
		}
		logger.LogAttrs(req.Context(), levelFor(c.Response().Status), msg, attrs...)

		return nil
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
