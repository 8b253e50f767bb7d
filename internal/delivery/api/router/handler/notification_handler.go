package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/response"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the notification records of the authenticated user
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// UpdateStatusRequest represents the request body for changing a record status
type UpdateStatusRequest struct {
	Status entity.NotificationStatus `json:"status" validate:"required"`
}

// ListNotifications handles GET /notifications; ?today=true keeps today's records
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	todayOnly := false
	if raw := c.QueryParam("today"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "today must be a boolean")
		}
		todayOnly = parsed
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, todayOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// UpdateStatus handles PATCH /notifications/:id/status
func (h *NotificationHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	notification, err := h.notificationUC.UpdateStatus(c.Request().Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// DeleteNotification handles DELETE /notifications/:id
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StreamNotifications handles GET /notifications/stream
func (h *NotificationHandler) StreamNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	it, err := h.notificationUC.WatchNotifications(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return streamSnapshots(c, it, h.logger)
}
