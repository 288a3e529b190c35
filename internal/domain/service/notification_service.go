package service

import (
	"context"
)

// CaregiverAlert is the push payload delivered to caregiver devices when an SOS is relayed
type CaregiverAlert struct {
	Title string
	Body  string
	Data  map[string]string
}

// DeliveryReport counts the outcome of one push batch
type DeliveryReport struct {
	Delivered     int
	Failed        int
	InvalidTokens []string // Tokens the push provider reported as unregistered or malformed
}

// NotificationService pushes SOS alerts to caregiver devices
type NotificationService interface {
	// PushAlert sends the alert at emergency priority to one batch of device tokens
	PushAlert(ctx context.Context, tokens []string, alert *CaregiverAlert) (*DeliveryReport, error)
}
