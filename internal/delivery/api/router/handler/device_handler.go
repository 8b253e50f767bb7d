package handler

import (
	"net/http"

	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/response"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler registers the devices that receive reminder pushes
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(deviceUC usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{deviceUC: deviceUC}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles POST /devices
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.DeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices handles GET /devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles PUT /devices/:id/token
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, c.Param("id"), req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated"})
}

// DeactivateDevice handles DELETE /devices/:id
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
