package middleware

import (
	"time"

	"guardian/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware counts requests per route and status.
type MetricsMiddleware struct {
	metrics service.MetricsRecorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(metrics service.MetricsRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Record renders any error first so the recorded status is the one sent.
func (m *MetricsMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.HTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
