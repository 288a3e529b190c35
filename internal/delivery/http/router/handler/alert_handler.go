package handler

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/http/response"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	DispatcherUC usecase.DispatcherUsecase
	DashboardUC  usecase.DashboardUsecase
	Logger       *slog.Logger
}

// AlertHandler serves the alert history.
type AlertHandler struct {
	dispatcherUC usecase.DispatcherUsecase
	dashboardUC  usecase.DashboardUsecase
	logger       *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		dispatcherUC: params.DispatcherUC,
		dashboardUC:  params.DashboardUC,
		logger:       params.Logger,
	}
}

// ListAlerts returns the alert log, newest first.
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatcherUC.Alerts(), "Alerts retrieved successfully")
}

// ClearAlerts empties the alert log.
func (h *AlertHandler) ClearAlerts(c echo.Context) error {
	if err := h.dispatcherUC.ClearAlerts(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Alert history cleared")
}

// AlertMap returns the located alerts as a GeoJSON feature collection, without the response envelope.
func (h *AlertHandler) AlertMap(c echo.Context) error {
	fc := h.dashboardUC.AlertMap(c.Request().Context())

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode alert map")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}
