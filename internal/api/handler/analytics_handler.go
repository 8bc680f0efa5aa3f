package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventorypro/inventory-system/internal/core/ports"
)

type AnalyticsHandler struct {
	analyticsService ports.AnalyticsService
}

func NewAnalyticsHandler(analyticsService ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// DashboardStats returns the headline numbers for the dashboard cards.
//
// @Summary      Dashboard statistics
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  ports.DashboardStats
// @Security     BearerAuth
// @Router       /v1/dashboard/stats [get]
func (h *AnalyticsHandler) DashboardStats(c echo.Context) error {
	stats, err := h.analyticsService.DashboardStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, stats)
}

// Report returns the full analytics breakdown, optionally filtered by category.
//
// @Summary      Analytics report
// @Tags         analytics
// @Produce      json
// @Param        category  query     string  false  "Category ID filter"
// @Success      200       {object}  ports.AnalyticsReport
// @Security     BearerAuth
// @Router       /v1/analytics [get]
func (h *AnalyticsHandler) Report(c echo.Context) error {
	report, err := h.analyticsService.Report(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, report)
}
