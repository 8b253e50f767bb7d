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

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
	Logger *slog.Logger
}

// SaleHandler serves the sales of the authenticated user
type SaleHandler struct {
	saleUC usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		saleUC: params.SaleUC,
		logger: params.Logger,
	}
}

// CreateSale handles POST /sales
func (h *SaleHandler) CreateSale(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.SaleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	sale, err := h.saleUC.CreateSale(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sale)
}

// ListSales handles GET /sales?limit=n
func (h *SaleHandler) ListSales(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	sales, err := h.saleUC.ListSales(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sales)
}

// GetSale handles GET /sales/:id
func (h *SaleHandler) GetSale(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sale, err := h.saleUC.GetSale(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sale)
}

// UpdateSale handles PATCH /sales/:id
func (h *SaleHandler) UpdateSale(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var patch entity.SalePatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	sale, err := h.saleUC.UpdateSale(c.Request().Context(), userID, c.Param("id"), &patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sale)
}

// DeleteSale handles DELETE /sales/:id
func (h *SaleHandler) DeleteSale(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.saleUC.DeleteSale(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StreamSales handles GET /sales/stream
func (h *SaleHandler) StreamSales(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	it, err := h.saleUC.WatchSales(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return streamSnapshots(c, it, h.logger)
}
