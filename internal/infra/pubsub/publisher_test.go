package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAlertEvent(t *testing.T) {
	var got PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	lat, lng := 25.03, 121.56
	event := &service.AlertEvent{
		RequestID: "req-1",
		AlertID:   "abc123xyz",
		Type:      "FALL",
		Details:   "Alert manually initiated via fall",
		Phone:     "5551234567",
		Latitude:  &lat,
		Longitude: &lng,
		RaisedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	require.NoError(t, publisher.PublishAlertEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "abc123xyz", got.Message.MessageID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "FALL", got.Message.Attributes["alert_type"])
	assert.Equal(t, "req-1", got.Message.Attributes["request_id"])
	assert.Equal(t, "user:5551234567", got.Message.OrderingKey)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.AlertEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func newFastLocalPublisher(endpoint string) *localHTTPPublisher {
	p := NewLocalHTTPPublisher(endpoint, testLogger()).(*localHTTPPublisher)
	p.backoff = time.Millisecond

	return p
}

func TestLocalHTTPPublisher_RetriesUntilRelayRecovers(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newFastLocalPublisher(srv.URL).PublishAlertEvent(context.Background(), &service.AlertEvent{AlertID: "x"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
		wantErr   string
	}{
		{name: "retryable until exhausted", status: http.StatusServiceUnavailable, wantCalls: localMaxAttempts, wantErr: "503"},
		{name: "rejected without retry", status: http.StatusBadRequest, wantCalls: 1, wantErr: "rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newFastLocalPublisher(srv.URL).PublishAlertEvent(context.Background(), &service.AlertEvent{AlertID: "x"})
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestOrderingKey(t *testing.T) {
	assert.Equal(t, "user:555", orderingKey(&service.AlertEvent{Phone: "555"}))
	assert.Equal(t, "user:anonymous", orderingKey(&service.AlertEvent{}))
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: testLogger(),
	})
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishAlertEvent(context.Background(), &service.AlertEvent{AlertID: "noop"}))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8090/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
