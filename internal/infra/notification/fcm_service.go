package notification

import (
	"context"
	"log/slog"

	"crm/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaxBatchTokens is the Cloud Messaging limit of tokens per multicast request.
const MaxBatchTokens = 500

// Params defines the dependencies of the push service
type Params struct {
	fx.In

	Ctx    context.Context
	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

type fcmService struct {
	client *messaging.Client
}

// NewPushService builds the Cloud Messaging push service. Without a Firebase
// app the returned service only logs what it would send.
func NewPushService(params Params) (service.PushService, error) {
	if params.App == nil {
		params.Logger.Warn("Firebase not configured, push notifications are logged only")

		return &logPushService{logger: params.Logger}, nil
	}

	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmService{
		client: client,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *fcmService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to at most MaxBatchTokens device tokens
func (s *fcmService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > MaxBatchTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

// logPushService stands in for Cloud Messaging in local setups
type logPushService struct {
	logger *slog.Logger
}

func (s *logPushService) SendSingleNotification(ctx context.Context, token, title, body string, _ map[string]string) error {
	s.logger.InfoContext(ctx, "[LogPush] Notification",
		slog.String("token", token),
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}

func (s *logPushService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, _ map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.InfoContext(ctx, "[LogPush] Batch notification",
		slog.Int("token_count", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
	)

	return len(tokens), 0, nil, nil
}
