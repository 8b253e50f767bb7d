package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"crm/internal/delivery/api/validator"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/snapshot"
	mockUsecase "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds an authenticated echo context for user-1.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set(deliverycontext.KeyUserID, "user-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestEventHandler_CreateEvent(t *testing.T) {
	eventUC := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(EventHandlerParams{EventUC: eventUC, Logger: discardLogger()})

	eventUC.EXPECT().
		CreateEvent(mock.Anything, "user-1", &usecase.EventInput{Title: "Demo", Date: "2024-06-01", Time: "09:00"}).
		Return(&entity.Event{ID: "evt-1", Title: "Demo", ReminderID: "rem-1"}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/events", `{"title":"Demo","date":"2024-06-01","time":"09:00"}`)
	require.NoError(t, h.CreateEvent(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var event entity.Event
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &event))
	assert.Equal(t, "evt-1", event.ID)
	assert.Equal(t, "rem-1", event.ReminderID)
}

func TestEventHandler_CreateEvent_ValidationError(t *testing.T) {
	h := NewEventHandler(EventHandlerParams{EventUC: mockUsecase.NewMockEventUsecase(t), Logger: discardLogger()})

	c, rec := newContext(http.MethodPost, "/api/v1/events", `{"title":"Demo","date":"01/06/2024"}`)
	require.NoError(t, h.CreateEvent(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)
}

func TestEventHandler_UpdateEvent_DomainError(t *testing.T) {
	eventUC := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(EventHandlerParams{EventUC: eventUC, Logger: discardLogger()})

	eventUC.EXPECT().
		UpdateEvent(mock.Anything, "user-1", "evt-1", mock.MatchedBy(func(p *entity.EventPatch) bool {
			return p.Time != nil && *p.Time == "10:00" && p.Title == nil
		})).
		Return(nil, domainerrors.ErrForbidden)

	c, rec := newContext(http.MethodPatch, "/api/v1/events/evt-1", `{"time":"10:00"}`)
	c.SetParamNames("id")
	c.SetParamValues("evt-1")
	require.NoError(t, h.UpdateEvent(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
}

func TestEventHandler_DeleteEvent(t *testing.T) {
	eventUC := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(EventHandlerParams{EventUC: eventUC, Logger: discardLogger()})

	eventUC.EXPECT().DeleteEvent(mock.Anything, "user-1", "evt-1").Return(nil)

	c, rec := newContext(http.MethodDelete, "/api/v1/events/evt-1", "")
	c.SetParamNames("id")
	c.SetParamValues("evt-1")
	require.NoError(t, h.DeleteEvent(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEventHandler_UnexpectedErrorIsReturned(t *testing.T) {
	eventUC := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(EventHandlerParams{EventUC: eventUC, Logger: discardLogger()})

	eventUC.EXPECT().ListEvents(mock.Anything, "user-1", "").Return(nil, errors.New("unavailable"))

	c, _ := newContext(http.MethodGet, "/api/v1/events", "")
	assert.Error(t, h.ListEvents(c))
}

func TestEventHandler_ExportCalendar(t *testing.T) {
	eventUC := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(EventHandlerParams{EventUC: eventUC, Logger: discardLogger()})

	eventUC.EXPECT().ExportCalendar(mock.Anything, "user-1").Return([]byte("BEGIN:VCALENDAR\r\n"), nil)

	c, rec := newContext(http.MethodGet, "/api/v1/events/calendar.ics", "")
	require.NoError(t, h.ExportCalendar(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/calendar")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "calendar.ics")
	assert.Equal(t, "BEGIN:VCALENDAR\r\n", rec.Body.String())
}

func TestEventHandler_MissingUser(t *testing.T) {
	h := NewEventHandler(EventHandlerParams{EventUC: mockUsecase.NewMockEventUsecase(t), Logger: discardLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/events", "")
	c.Set(deliverycontext.KeyUserID, nil)
	require.NoError(t, h.ListEvents(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotificationHandler_ListNotifications_Today(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: discardLogger()})

	notificationUC.EXPECT().ListNotifications(mock.Anything, "user-1", true).
		Return([]*entity.Notification{{ID: "n-1", Date: "2024-06-01"}}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/notifications?today=true", "")
	require.NoError(t, h.ListNotifications(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var notifications []*entity.Notification
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &notifications))
	assert.Len(t, notifications, 1)
}

func TestNotificationHandler_ListNotifications_BadFlag(t *testing.T) {
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t), Logger: discardLogger()})

	c, rec := newContext(http.MethodGet, "/api/v1/notifications?today=hoy", "")
	require.NoError(t, h.ListNotifications(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler_UpdateStatus(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: discardLogger()})

	notificationUC.EXPECT().UpdateStatus(mock.Anything, "user-1", "n-1", entity.NotificationStatusCompleted).
		Return(&entity.Notification{ID: "n-1", Status: entity.NotificationStatusCompleted}, nil)

	c, rec := newContext(http.MethodPatch, "/api/v1/notifications/n-1/status", `{"status":"completado"}`)
	c.SetParamNames("id")
	c.SetParamValues("n-1")
	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// scriptedIterator returns its snapshots in order, then err.
type scriptedIterator struct {
	snapshots [][]*entity.Notification
	err       error
	stopped   atomic.Bool
}

func (it *scriptedIterator) Next(_ context.Context) ([]*entity.Notification, error) {
	if it.stopped.Load() {
		return nil, snapshot.ErrStopped
	}
	if len(it.snapshots) == 0 {
		return nil, it.err
	}

	next := it.snapshots[0]
	it.snapshots = it.snapshots[1:]

	return next, nil
}

func (it *scriptedIterator) Stop() { it.stopped.Store(true) }

func TestNotificationHandler_StreamNotifications(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: discardLogger()})

	it := &scriptedIterator{
		snapshots: [][]*entity.Notification{{{ID: "n-1"}}, nil},
		err:       errors.New("permission denied"),
	}
	notificationUC.EXPECT().WatchNotifications(mock.Anything, "user-1").Return(it, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/notifications/stream", "")
	require.NoError(t, h.StreamNotifications(c))

	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.Contains(t, body, "event: snapshot\ndata: [{\"id\":\"n-1\"")
	assert.Contains(t, body, "event: snapshot\ndata: []\n\n")
	assert.True(t, strings.HasSuffix(body, "event: error\ndata: {\"message\":\"live query failed\"}\n\n"))
	assert.True(t, it.stopped.Load())
}

func TestSaleHandler_ListSales_Limit(t *testing.T) {
	saleUC := mockUsecase.NewMockSaleUsecase(t)
	h := NewSaleHandler(SaleHandlerParams{SaleUC: saleUC, Logger: discardLogger()})

	saleUC.EXPECT().ListSales(mock.Anything, "user-1", 5).Return([]*entity.Sale{}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/sales?limit=5", "")
	require.NoError(t, h.ListSales(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/api/v1/sales?limit=-1", "")
	require.NoError(t, h.ListSales(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientHandler_GetContactQR(t *testing.T) {
	clientUC := mockUsecase.NewMockClientUsecase(t)
	h := NewClientHandler(clientUC)

	clientUC.EXPECT().ContactQR(mock.Anything, "c-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/clients/c-1/qr", "")
	c.SetParamNames("id")
	c.SetParamValues("c-1")
	require.NoError(t, h.GetContactQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestClientHandler_CreateClient_InvalidEmail(t *testing.T) {
	h := NewClientHandler(mockUsecase.NewMockClientUsecase(t))

	c, rec := newContext(http.MethodPost, "/api/v1/clients", `{"name":"Ana","email":"no-es-correo"}`)
	require.NoError(t, h.CreateClient(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(deviceUC)

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, "user-1", &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "d-1", Platform: "android"}).
		Return(&entity.UserDevice{ID: "dev-1", IsActive: true}, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/devices", `{"fcm_token":"tok","device_id":"d-1","platform":"android"}`)
	require.NoError(t, h.RegisterDevice(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDashboardHandler_GetSummary(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(dashboardUC)

	dashboardUC.EXPECT().GetSummary(mock.Anything, "user-1").
		Return(&usecase.DashboardSummary{Date: "2024-06-01", PendingTasks: 2, SalesTotalToday: 150.5}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/dashboard", "")
	require.NoError(t, h.GetSummary(c))

	var summary usecase.DashboardSummary
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &summary))
	assert.Equal(t, 2, summary.PendingTasks)
	assert.InDelta(t, 150.5, summary.SalesTotalToday, 0.001)
}
