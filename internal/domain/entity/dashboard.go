package entity

// Dashboard aggregates everything the dashboard view renders.
type Dashboard struct {
	Status       SafetyStatus     `json:"status"`
	Armed        bool             `json:"armed"`
	Location     LocationSnapshot `json:"location"`
	Voice        VoiceSnapshot    `json:"voice"`
	Acceleration []MotionReading  `json:"acceleration"`
	LastAlert    *AlertLogEntry   `json:"last_alert,omitempty"`
}

// StateEventType names a change pushed to live subscribers.
type StateEventType string

const (
	StateEventStatus   StateEventType = "status"
	StateEventAlert    StateEventType = "alert"
	StateEventLocation StateEventType = "location"
	StateEventVoice    StateEventType = "voice"
	StateEventMotion   StateEventType = "motion"
)

// StateEvent is a single change notification.
type StateEvent struct {
	Type    StateEventType `json:"type"`
	Payload any            `json:"payload"`
}
