// Package middleware holds the echo middleware shared by the API and worker servers.
package middleware

import (
	"log/slog"

	deliverycontext "crm/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags each request with an ID and a request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process keeps an incoming X-Request-Id or generates one, echoes it back and
// stores it with a child logger on the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		logger := m.logger.With(slog.String("request_id", requestID))
		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), requestID), logger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
