package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/constants"
	"crm/internal/domain/service"
	"crm/internal/infra/pubsub"
	mockUsecase "crm/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockReminderDeliveryUsecase) {
	deliveryUC := mockUsecase.NewMockReminderDeliveryUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DeliveryUC: deliveryUC,
	}), deliveryUC
}

func pushBody(t *testing.T, event *service.ReminderEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/local/subscriptions/reminder-sub")
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func firedReminder() *service.ReminderEvent {
	return &service.ReminderEvent{
		RequestID:  "req-1",
		ReminderID: "rem-1",
		EventID:    "evt-1",
		UserID:     "user-1",
		Title:      "Tienes un evento pendiente",
		Body:       "Demo",
	}
}

func serve(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DeliversReminder(t *testing.T) {
	h, deliveryUC := newTestPushHandler(t, &config.Config{})

	deliveryUC.EXPECT().
		HandleReminder(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-1"
		}), mock.MatchedBy(func(event *service.ReminderEvent) bool {
			return event.ReminderID == "rem-1" && event.Body == "Demo"
		})).
		Return(nil)

	rec := serve(h, pushBody(t, firedReminder()), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DeliveryFailureIsRetried(t *testing.T) {
	h, deliveryUC := newTestPushHandler(t, &config.Config{})

	deliveryUC.EXPECT().HandleReminder(mock.Anything, mock.Anything).Return(errors.New("messaging unavailable"))

	rec := serve(h, pushBody(t, firedReminder()), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	incomplete := firedReminder()
	incomplete.EventID = ""

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"data not base64", `{"message":{"data":"%%%"}}`},
		{"data not an event", `{"message":{"data":"bm9wZQ=="}}`},
		{"missing ids", pushBody(t, incomplete)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.Config{})

			rec := serve(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, deliveryUC := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var audience string
	h.validateToken = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
		audience = aud
		if token != "signed" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	rec := serve(h, pushBody(t, firedReminder()), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(h, pushBody(t, firedReminder()), http.Header{"Authorization": {"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	deliveryUC.EXPECT().HandleReminder(mock.Anything, mock.Anything).Return(nil)
	rec = serve(h, pushBody(t, firedReminder()), http.Header{"Authorization": {"Bearer signed"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/push", audience)
}
