package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/constants"
	"crm/internal/domain/service"
	"crm/internal/infra/pubsub"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler receives fired reminders pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	validateToken  func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
	logger         *slog.Logger
	deliveryUC     usecase.ReminderDeliveryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DeliveryUC usecase.ReminderDeliveryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google signs its push requests; local pushes come from our own publisher.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		deliveryUC:     params.DeliveryUC,
	}
}

// HandlePush handles POST /push. Malformed messages are acknowledged with 400,
// delivery failures answer 503 so Pub/Sub retries them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ReminderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse reminder event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.ReminderID == "" || event.EventID == "" || event.UserID == "" {
		h.logger.Error("[Worker] Reminder event is incomplete", slog.String("message_id", pushMsg.Message.MessageID))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing reminder",
		slog.String("reminder_id", event.ReminderID),
		slog.String("event_id", event.EventID),
	)

	if err := h.deliveryUC.HandleReminder(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to deliver reminder",
			slog.String("reminder_id", event.ReminderID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the
// X-Request-Id header, and finally generates one.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.ReminderEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the Google-signed ID token of a push request.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
