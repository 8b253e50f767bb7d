package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/response"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler serves the calendar of the authenticated user
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.EventInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event)
}

// ListEvents handles GET /events, optionally filtered by ?date=YYYY-MM-DD
func (h *EventHandler) ListEvents(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	events, err := h.eventUC.ListEvents(c.Request().Context(), userID, c.QueryParam("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// GetEvent handles GET /events/:id
func (h *EventHandler) GetEvent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// UpdateEvent handles PATCH /events/:id
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var patch entity.EventPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), userID, c.Param("id"), &patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// DeleteEvent handles DELETE /events/:id
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StreamEvents handles GET /events/stream?date=YYYY-MM-DD
func (h *EventHandler) StreamEvents(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date := c.QueryParam("date")
	if date == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "date is required")
	}

	it, err := h.eventUC.WatchEventsByDate(c.Request().Context(), userID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return streamSnapshots(c, it, h.logger)
}

// ExportCalendar handles GET /events/calendar.ics
func (h *EventHandler) ExportCalendar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	data, err := h.eventUC.ExportCalendar(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, "text/calendar; charset=utf-8", "calendar.ics", data)
}
