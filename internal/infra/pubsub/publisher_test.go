package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/constants"
	"crm/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type recordingHandler struct {
	events []*service.ReminderEvent
}

func (h *recordingHandler) HandleReminder(_ context.Context, event *service.ReminderEvent) error {
	h.events = append(h.events, event)

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.ReminderEvent {
	return &service.ReminderEvent{
		RequestID:  "req-1",
		ReminderID: "rem-1",
		EventID:    "evt-1",
		UserID:     "user-1",
		Title:      "Tienes un evento pendiente",
		Body:       "Demo",
		FireAt:     time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestNewEventPublisher_DefaultsToDirectDelivery(t *testing.T) {
	handler := &recordingHandler{}

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:      fxtest.NewLifecycle(t),
		Ctx:     context.Background(),
		Config:  &config.Config{},
		Logger:  testLogger(),
		Handler: handler,
	})
	require.NoError(t, err)

	require.NoError(t, publisher.PublishReminderEvent(context.Background(), sampleEvent()))
	require.Len(t, handler.events, 1)
	assert.Equal(t, "rem-1", handler.events[0].ReminderID)
}

func TestNewEventPublisher_NoHandlerIsNoop(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: testLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishReminderEvent(context.Background(), sampleEvent()))
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishReminderEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "rem-1", received.Message.MessageID)
	assert.Equal(t, "evt-1", received.Message.Attributes["event_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ReminderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Demo", decoded.Body)
	assert.True(t, decoded.FireAt.Equal(sampleEvent().FireAt))
}

func TestLocalHTTPPublisher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	assert.Error(t, publisher.PublishReminderEvent(context.Background(), sampleEvent()))
}
