package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPushService_WithoutFirebaseLogsOnly(t *testing.T) {
	svc, err := NewPushService(Params{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "Tienes un evento pendiente", "Demo", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)

	require.NoError(t, svc.SendSingleNotification(context.Background(), "a", "t", "b", nil))
}
