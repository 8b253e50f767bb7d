// Package context carries request-scoped values between echo handlers and
// the use cases they call.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header carrying the request ID in both directions.
const HeaderXRequestID = "X-Request-Id"

// echo.Context keys.
const (
	keyRequestID = "request_id"

	// KeyUserID holds the authenticated user ID.
	KeyUserID = "userID"

	// KeyIdentity holds the verified *service.Identity.
	KeyIdentity = "identity"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// GetRequestID returns the request ID set by the request ID middleware,
// falling back to the response header and then to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(keyRequestID).(string); ok && id != "" {
		return id
	}

	if id := c.Response().Header().Get(HeaderXRequestID); id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(keyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID stored on ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request logger stored on ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
