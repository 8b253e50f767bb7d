package gormstore

import (
	"context"
	"testing"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/domain/snapshot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPollInterval = 10 * time.Millisecond

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)

	db = db.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestEventRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(newTestDB(t), testPollInterval)

	late := &entity.Event{Title: "Cierre", Date: "2024-06-01", Time: "17:00", UserID: "u1", CreatedAt: time.Now()}
	early := &entity.Event{Title: "Demo", Date: "2024-06-01", Time: "09:00", UserID: "u1", ReminderID: "r1", CreatedAt: time.Now()}
	other := &entity.Event{Title: "Ajeno", Date: "2024-06-01", Time: "08:00", UserID: "u2", CreatedAt: time.Now()}

	for _, e := range []*entity.Event{late, early, other} {
		require.NoError(t, repo.CreateEvent(ctx, e))
		require.NotEmpty(t, e.ID)
	}

	found, err := repo.FindEventByID(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo", found.Title)
	assert.Equal(t, "r1", found.ReminderID)

	byDate, err := repo.FindEventsByDate(ctx, "u1", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, early.ID, byDate[0].ID)
	assert.Equal(t, late.ID, byDate[1].ID)

	count, err := repo.CountEventsByDate(ctx, "u1", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	early.Time = "10:00"
	early.ReminderID = "r2"
	require.NoError(t, repo.UpdateEvent(ctx, early))

	found, err = repo.FindEventByID(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", found.Time)
	assert.Equal(t, "r2", found.ReminderID)

	require.NoError(t, repo.DeleteEvent(ctx, early.ID))
	_, err = repo.FindEventByID(ctx, early.ID)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
	assert.ErrorIs(t, repo.DeleteEvent(ctx, early.ID), repository.ErrEventNotFound)
	assert.ErrorIs(t, repo.UpdateEvent(ctx, early), repository.ErrEventNotFound)
}

func TestNotificationRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(newTestDB(t), testPollInterval)

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	older := &entity.Notification{EventID: "e1", Title: "Demo", UserID: "u1", Status: entity.NotificationStatusPending, CreatedAt: base}
	newer := &entity.Notification{EventID: "e2", Title: "Cierre", UserID: "u1", Status: entity.NotificationStatusPending, CreatedAt: base.Add(time.Hour)}
	foreign := &entity.Notification{EventID: "e3", Title: "Ajeno", UserID: "u2", Status: entity.NotificationStatusCompleted, CreatedAt: base}

	for _, n := range []*entity.Notification{older, newer, foreign} {
		require.NoError(t, repo.CreateNotification(ctx, n))
	}

	byUser, err := repo.FindNotificationsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, newer.ID, byUser[0].ID)

	byEvent, err := repo.FindNotificationsByEvent(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, byEvent, 1)
	assert.Equal(t, older.ID, byEvent[0].ID)

	require.NoError(t, repo.UpdateNotificationStatus(ctx, older.ID, entity.NotificationStatusCancelled))
	pending, err := repo.FindNotificationsByStatus(ctx, entity.NotificationStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, newer.ID, pending[0].ID)

	require.NoError(t, repo.UpdateNotificationMirror(ctx, newer.ID, &entity.NotificationMirror{
		Title: "Cierre mensual", Date: "2024-06-02", Time: "11:00", ReminderID: "r9",
	}))
	got, err := repo.FindNotificationByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cierre mensual", got.Title)
	assert.Equal(t, "r9", got.ReminderID)
	assert.Equal(t, entity.NotificationStatusPending, got.Status)

	all, err := repo.FindAllNotifications(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.DeleteNotification(ctx, foreign.ID))
	assert.ErrorIs(t, repo.DeleteNotification(ctx, foreign.ID), repository.ErrNotificationNotFound)
	assert.ErrorIs(t, repo.UpdateNotificationStatus(ctx, "missing", entity.NotificationStatusCompleted), repository.ErrNotificationNotFound)
}

func TestSaleRepository_CreatedBetween(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(newTestDB(t), testPollInterval)

	loc := time.FixedZone("UTC-5", -5*3600)
	dayStart := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)

	yesterday := &entity.Sale{Description: "a", Total: 10, Status: entity.SaleStatusPaid, UserID: "u1", CreatedAt: dayStart.Add(-time.Minute)}
	morning := &entity.Sale{Description: "b", Total: 25.5, Status: entity.SaleStatusPending, UserID: "u1", CreatedAt: dayStart.Add(9 * time.Hour)}
	evening := &entity.Sale{Description: "c", Total: 4.5, Status: entity.SaleStatusPaid, UserID: "u1", CreatedAt: dayStart.Add(23 * time.Hour)}
	foreign := &entity.Sale{Description: "d", Total: 100, Status: entity.SaleStatusPaid, UserID: "u2", CreatedAt: dayStart.Add(time.Hour)}

	for _, s := range []*entity.Sale{yesterday, morning, evening, foreign} {
		require.NoError(t, repo.CreateSale(ctx, s))
	}

	today, err := repo.FindSalesCreatedBetween(ctx, "u1", dayStart, dayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, evening.ID, today[0].ID)
	assert.Equal(t, morning.ID, today[1].ID)

	latest, err := repo.FindSalesByUser(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, evening.ID, latest[0].ID)

	morning.Status = entity.SaleStatusPaid
	require.NoError(t, repo.UpdateSale(ctx, morning))
	got, err := repo.FindSaleByID(ctx, morning.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaid, got.Status)

	require.NoError(t, repo.DeleteSale(ctx, morning.ID))
	_, err = repo.FindSaleByID(ctx, morning.ID)
	assert.ErrorIs(t, err, repository.ErrSaleNotFound)
}

func TestClientRepository_OrderedByName(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(newTestDB(t))

	zoe := &entity.Client{Name: "Zoe", Email: "zoe@example.com", CreatedAt: time.Now()}
	ana := &entity.Client{Name: "Ana", Phone: "555-0101", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateClient(ctx, zoe))
	require.NoError(t, repo.CreateClient(ctx, ana))

	clients, err := repo.FindAllClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Ana", clients[0].Name)

	ana.Note = "VIP"
	require.NoError(t, repo.UpdateClient(ctx, ana))
	got, err := repo.FindClientByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "VIP", got.Note)

	require.NoError(t, repo.DeleteClient(ctx, zoe.ID))
	_, err = repo.FindClientByID(ctx, zoe.ID)
	assert.ErrorIs(t, err, repository.ErrClientNotFound)
}

func TestDeviceRepository_TokenLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(newTestDB(t))

	phone := &entity.UserDevice{UserID: "u1", FCMToken: "tok-1", DeviceID: "phone", Platform: "android", IsActive: true}
	tablet := &entity.UserDevice{UserID: "u1", FCMToken: "tok-2", DeviceID: "tablet", Platform: "ios", IsActive: true}
	require.NoError(t, repo.CreateDevice(ctx, phone))
	require.NoError(t, repo.CreateDevice(ctx, tablet))

	again := &entity.UserDevice{UserID: "u1", FCMToken: "tok-9", DeviceID: "phone", Platform: "android", IsActive: true}
	assert.ErrorIs(t, repo.CreateDevice(ctx, again), repository.ErrDuplicateDevice)

	require.NoError(t, repo.DeactivateDevicesByToken(ctx, []string{"tok-2"}))

	active, err := repo.FindActiveDevicesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, phone.ID, active[0].ID)

	require.NoError(t, repo.UpdateFCMToken(ctx, tablet.ID, "tok-3"))
	active, err = repo.FindActiveDevicesByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, repo.DeleteDevice(ctx, phone.ID))
	all, err := repo.FindDevicesByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.ErrorIs(t, repo.DeleteDevice(ctx, "missing"), repository.ErrDeviceNotFound)
}

func TestWatchEventsByDate_EmitsOnChange(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(newTestDB(t), testPollInterval)

	require.NoError(t, repo.CreateEvent(ctx, &entity.Event{Title: "Demo", Date: "2024-06-01", Time: "09:00", UserID: "u1", CreatedAt: time.Now()}))

	it, err := repo.WatchEventsByDate(ctx, "u1", "2024-06-01")
	require.NoError(t, err)

	snapshots := make(chan []*entity.Event, 4)
	unsubscribe := snapshot.Subscribe(ctx, it, func(events []*entity.Event) {
		snapshots <- events
	}, func(err error) {
		t.Errorf("unexpected error: %v", err)
	})
	defer unsubscribe()

	first := <-snapshots
	require.Len(t, first, 1)

	require.NoError(t, repo.CreateEvent(ctx, &entity.Event{Title: "Cierre", Date: "2024-06-01", Time: "17:00", UserID: "u1", CreatedAt: time.Now()}))

	select {
	case second := <-snapshots:
		require.Len(t, second, 2)
		assert.Equal(t, "Cierre", second[1].Title)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after insert")
	}
}

func TestPollingIterator_StopUnblocksNext(t *testing.T) {
	it := newPollingIterator(time.Hour, func(context.Context) ([]int, error) {
		return []int{1}, nil
	})

	items, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, items)

	done := make(chan error, 1)
	go func() {
		_, err := it.Next(context.Background())
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	it.Stop()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, snapshot.ErrStopped)
	case <-time.After(time.Second):
		t.Fatal("Next did not return after Stop")
	}
}
