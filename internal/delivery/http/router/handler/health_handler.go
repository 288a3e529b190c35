package handler

import (
	"net/http"

	"guardian/internal/delivery/http/response"
	"guardian/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Metrics *metrics.Metrics
	Device  metrics.DeviceStatus
}

// HealthHandler serves the probes.
type HealthHandler struct {
	metrics *metrics.Metrics
	device  metrics.DeviceStatus
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{metrics: params.Metrics, device: params.Device}
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":           "ok",
		"device_connected": h.device.Connected(),
	}, "Service is healthy")
}

// Metrics serves the scrape endpoint, or 404 when metrics are disabled.
func (h *HealthHandler) Metrics(c echo.Context) error {
	if !h.metrics.Enabled() {
		return echo.ErrNotFound
	}
	h.metrics.Handler().ServeHTTP(c.Response(), c.Request())

	return nil
}
