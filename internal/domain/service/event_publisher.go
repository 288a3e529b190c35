package service

import (
	"context"
	"time"
)

// AlertEvent is published for downstream consumers whenever an SOS is raised
type AlertEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	AlertID   string    `json:"alert_id"`
	Type      string    `json:"type"`
	Details   string    `json:"details"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	RaisedAt  time.Time `json:"raised_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for async processing
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
