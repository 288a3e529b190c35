package entity

import (
	"strings"
	"time"
)

// AlertType identifies what raised an alert.
type AlertType string

const (
	AlertTypeFall   AlertType = "FALL"
	AlertTypeVoice  AlertType = "VOICE"
	AlertTypeManual AlertType = "MANUAL"
	AlertTypeShake  AlertType = "SHAKE"
)

// IsValid checks if the AlertType is a valid value.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeFall, AlertTypeVoice, AlertTypeManual, AlertTypeShake:
		return true
	default:
		return false
	}
}

// AlertDetails returns the fixed human-readable description for an alert of this type.
func (t AlertType) AlertDetails() string {
	if t == AlertTypeVoice {
		return "Acoustic pattern matched distress signature"
	}

	return "Alert manually initiated via " + strings.ToLower(string(t))
}

// AlertStatus is the delivery status recorded on a log entry.
type AlertStatus string

const (
	AlertStatusSent   AlertStatus = "SENT"
	AlertStatusFailed AlertStatus = "FAILED"
)

// AlertLogEntry is an immutable record of a raised alert.
type AlertLogEntry struct {
	ID        string       `json:"id"`                // Opaque random token.
	Type      AlertType    `json:"type"`              // What raised the alert.
	Timestamp time.Time    `json:"timestamp"`         // When the alert was raised.
	Location  *LocationFix `json:"location"`          // Copy of the last fix at trigger time, nil if none.
	Status    AlertStatus  `json:"status"`            // Delivery status.
	Details   string       `json:"details,omitempty"` // Human-readable description.
}

// SOSOverlay is the read model of the alert overlay shown while an SOS is active.
type SOSOverlay struct {
	Active             bool           `json:"active"`
	Alert              *AlertLogEntry `json:"alert,omitempty"`
	CountdownRemaining int            `json:"countdown_remaining"` // Whole seconds left before dispatch.
	Dispatched         bool           `json:"dispatched"`
	EmergencyNumber    string         `json:"emergency_number"`
}
