package handler

import (
	"net/http"

	"crm/internal/delivery/api/response"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ClientHandler serves the shared client directory
type ClientHandler struct {
	clientUC usecase.ClientUsecase
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(clientUC usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{clientUC: clientUC}
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req usecase.ClientInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	client, err := h.clientUC.CreateClient(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, client)
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.clientUC.ListClients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, clients)
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c echo.Context) error {
	client, err := h.clientUC.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, client)
}

// UpdateClient handles PATCH /clients/:id
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	var patch entity.ClientPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	client, err := h.clientUC.UpdateClient(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, client)
}

// DeleteClient handles DELETE /clients/:id
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	if err := h.clientUC.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetContactQR handles GET /clients/:id/qr and returns a vCard QR code as PNG
func (h *ClientHandler) GetContactQR(c echo.Context) error {
	png, err := h.clientUC.ContactQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
