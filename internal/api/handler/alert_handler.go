package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventorypro/inventory-system/internal/core/ports"
)

type AlertHandler struct {
	alertService ports.AlertService
}

func NewAlertHandler(alertService ports.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// List returns the current stock alerts, derived live from item quantities.
//
// @Summary      List stock alerts
// @Tags         alerts
// @Produce      json
// @Success      200  {array}  domain.Alert
// @Security     BearerAuth
// @Router       /v1/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	alerts, err := h.alertService.ListAlerts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, alerts)
}
