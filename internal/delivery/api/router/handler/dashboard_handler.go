package handler

import (
	"net/http"

	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/response"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the home screen summary
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetSummary handles GET /dashboard
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	summary, err := h.dashboardUC.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
