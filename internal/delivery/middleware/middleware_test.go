package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, debug bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e, buf
}

func TestRequestIDMiddleware(t *testing.T) {
	e, _ := newServer(t, false)

	var fromCtx string
	e.GET("/ping", func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", fromCtx)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, fromCtx)
}

func TestLoggerMiddleware_LogsFinalStatus(t *testing.T) {
	e, buf := newServer(t, true)
	e.GET("/api/v1/events/:id", func(c echo.Context) error {
		c.Set(deliverycontext.KeyUserID, "user-1")

		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events/evt-1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=404")
	assert.Contains(t, buf.String(), "user_id=user-1")
	assert.Contains(t, buf.String(), "request_id=")
}

func TestLoggerMiddleware_Quiet(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		path  string
	}{
		{"debug disabled", false, "/ping"},
		{"health check", true, "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, buf := newServer(t, tt.debug)
			e.GET(tt.path, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Empty(t, buf.String())
		})
	}
}
