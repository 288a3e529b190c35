// Package metrics exposes the pipeline counters in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "guardian"

// DeviceStatus reports whether a phone is attached to the bridge.
type DeviceStatus interface {
	Connected() bool
}

// Metrics holds the collectors on a private registry so tests and multiple instances never collide.
type Metrics struct {
	registry *prometheus.Registry
	enabled  bool

	alertsTotal         *prometheus.CounterVec
	voiceSessionsTotal  *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Params holds dependencies for Metrics, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Device DeviceStatus `optional:"true"`
}

// New creates the metrics registry
func New(params Params) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		enabled:  params.Config.Metrics == nil || params.Config.Metrics.Enabled,

		alertsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_total",
				Help:      "Total number of SOS alerts raised",
			},
			[]string{"type"},
		),

		voiceSessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "voice_sessions_total",
				Help:      "Voice sentry session attempts by outcome",
			},
			[]string{"outcome"},
		),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.alertsTotal,
		m.voiceSessionsTotal,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)

	if params.Device != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "device_connected",
				Help:      "1 when a phone is attached to the device bridge",
			},
			func() float64 {
				if params.Device.Connected() {
					return 1
				}

				return 0
			},
		))
	}

	return m
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// Enabled reports whether the /metrics endpoint should be served
func (m *Metrics) Enabled() bool {
	return m.enabled
}

func (m *Metrics) AlertRaised(alertType string) {
	m.alertsTotal.WithLabelValues(alertType).Inc()
}

func (m *Metrics) VoiceSession(outcome string) {
	m.voiceSessionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
