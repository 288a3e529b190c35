package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(logger *slog.Logger, debug bool) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/contacts", func(c echo.Context) error {
		id := deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.String(http.StatusOK, id)
	})

	return e
}

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := newTestEcho(slog.New(slog.NewTextHandler(io.Discard, nil)), false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	header := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, header)
	assert.Equal(t, header, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "from-client")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "from-client", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "from-client", rec.Body.String())
}

func TestLoggerMiddleware_LogsWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(slog.New(slog.NewTextHandler(&buf, nil)), false)

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Contains(t, buf.String(), "route=/contacts")
	assert.Contains(t, buf.String(), "status=200")
}

func TestLoggerMiddleware_QuietPaths(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(slog.New(slog.NewTextHandler(&buf, nil)), false)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	buf.Reset()
	e = newTestEcho(slog.New(slog.NewTextHandler(&buf, nil)), true)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Contains(t, buf.String(), "uri=/health")
}

func TestRequestIDMiddleware_RejectsOversizedID(t *testing.T) {
	e := newTestEcho(slog.New(slog.NewTextHandler(io.Discard, nil)), false)

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, string(bytes.Repeat([]byte("x"), 200)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestUsableRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "uuid", id: "0b7d3a52-5c1e-4f43-9b53-1f0a8f6b9e21", want: true},
		{name: "empty", id: "", want: false},
		{name: "space", id: "abc def", want: false},
		{name: "newline", id: "abc\nforged=1", want: false},
		{name: "non ascii", id: "caf\u00e9", want: false},
		{name: "at limit", id: string(bytes.Repeat([]byte("a"), maxRequestIDLength)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usableRequestID(tt.id))
		})
	}
}
