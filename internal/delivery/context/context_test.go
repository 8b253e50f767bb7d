package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Response().Header().Set(HeaderXRequestID, "req-2")
	assert.Equal(t, "req-2", GetRequestID(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Len(t, GetRequestID(c), 36)
}

func TestRequestScopedValues(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	ctx = WithLogger(WithRequestID(ctx, "req-1"), scoped)
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}
