package firestoredb

import (
	"context"
	"os"
	"testing"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/domain/snapshot"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the Firestore emulator, skipping the test
// when FIRESTORE_EMULATOR_HOST is not set.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "demo-crm")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestEmulator_EventRepository(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewEventRepository(client)
	userID := "user-" + uuid.NewString()

	late := &entity.Event{Title: "Cierre", Date: "2024-06-01", Time: "17:00", UserID: userID, CreatedAt: time.Now()}
	early := &entity.Event{Title: "Demo", Date: "2024-06-01", Time: "09:00", UserID: userID, ReminderID: "r1", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateEvent(ctx, late))
	require.NoError(t, repo.CreateEvent(ctx, early))

	events, err := repo.FindEventsByDate(ctx, userID, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, early.ID, events[0].ID)
	assert.Equal(t, "r1", events[0].ReminderID)

	count, err := repo.CountEventsByDate(ctx, userID, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountEventsByDate(ctx, userID, "2024-06-02")
	require.NoError(t, err)
	assert.Zero(t, count)

	early.Time = "10:00"
	require.NoError(t, repo.UpdateEvent(ctx, early))
	got, err := repo.FindEventByID(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.Time)

	require.NoError(t, repo.DeleteEvent(ctx, early.ID))
	_, err = repo.FindEventByID(ctx, early.ID)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
	assert.ErrorIs(t, repo.DeleteEvent(ctx, early.ID), repository.ErrEventNotFound)

	count, err = repo.CountEventsByDate(ctx, userID, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEmulator_WatchNotificationsByUser(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewNotificationRepository(client)
	userID := "user-" + uuid.NewString()

	it, err := repo.WatchNotificationsByUser(ctx, userID)
	require.NoError(t, err)

	snapshots := make(chan []*entity.Notification, 4)
	unsubscribe := snapshot.Subscribe(ctx, it, func(items []*entity.Notification) {
		snapshots <- items
	}, func(err error) {
		t.Errorf("unexpected error: %v", err)
	})

	first := <-snapshots
	assert.Empty(t, first)

	require.NoError(t, repo.CreateNotification(ctx, &entity.Notification{
		EventID: "e1", Title: "Demo", UserID: userID, Status: entity.NotificationStatusPending, CreatedAt: time.Now(),
	}))

	select {
	case second := <-snapshots:
		require.Len(t, second, 1)
		assert.Equal(t, entity.NotificationStatusPending, second[0].Status)
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot after insert")
	}

	unsubscribe()
}
