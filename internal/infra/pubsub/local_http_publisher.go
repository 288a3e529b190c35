package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/alert-relay"
	localMaxAttempts  = 3
	localRetryBackoff = 250 * time.Millisecond
)

// localHTTPPublisher pushes alert events straight to the relay worker, emulating a Pub/Sub
// push subscription for development. Like Pub/Sub it redelivers while the relay answers 5xx.
type localHTTPPublisher struct {
	endpoint    string
	httpClient  *http.Client
	logger      *slog.Logger
	maxAttempts int
	backoff     time.Duration
}

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:      logger,
		maxAttempts: localMaxAttempts,
		backoff:     localRetryBackoff,
	}
}

// PublishAlertEvent posts the event in a push envelope, retrying while the relay reports a retryable failure
func (p *localHTTPPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	body, err := p.envelope(event)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		retry, err := p.post(ctx, event, body)
		if err == nil {
			p.logger.Info("Alert event pushed to relay",
				slog.String("alert_id", event.AlertID),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if !retry {
			return err
		}
		lastErr = err

		p.logger.Warn("Relay push failed, retrying",
			slog.String("alert_id", event.AlertID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		if attempt == p.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}

	return errors.Wrapf(lastErr, "alert %s not delivered after %d attempts", event.AlertID, p.maxAttempts)
}

func (p *localHTTPPublisher) envelope(event *service.AlertEvent) ([]byte, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.AlertID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = attributes(event)
	pushMsg.Message.OrderingKey = orderingKey(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return body, nil
}

// post sends one delivery attempt and reports whether a failure is worth retrying.
func (p *localHTTPPublisher) post(ctx context.Context, event *service.AlertEvent, body []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return true, errors.Errorf("relay returned retryable status: %d", resp.StatusCode)
	default:
		return false, errors.Errorf("relay rejected alert event: %d", resp.StatusCode)
	}
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
