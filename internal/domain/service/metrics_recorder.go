package service

import "time"

// Voice session outcomes reported to MetricsRecorder.VoiceSession.
const (
	VoiceSessionStarted     = "started"
	VoiceSessionFailed      = "failed"
	VoiceSessionUnavailable = "unavailable"
)

// MetricsRecorder records operational counters of the safety pipeline.
type MetricsRecorder interface {
	AlertRaised(alertType string)
	VoiceSession(outcome string)
	HTTPRequest(method, route string, status int, elapsed time.Duration)
}
