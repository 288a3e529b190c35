package device

import (
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
)

// Message types exchanged with the phone. Server commands flow down, readings flow up.
const (
	msgLocate        = "locate"
	msgWatchStart    = "watch_start"
	msgWatchStop     = "watch_stop"
	msgMotionStart   = "motion_start"
	msgMotionStop    = "motion_stop"
	msgAudioStart    = "audio_start"
	msgAudioStop     = "audio_stop"
	msgVibrate       = "vibrate"
	msgDial          = "dial"
	msgHello         = "hello"
	msgPosition      = "position"
	msgPositionError = "position_error"
	msgMotion        = "motion"
)

// Geolocation error codes reported by the phone.
const (
	codePermissionDenied    = "PERMISSION_DENIED"
	codeTimeout             = "TIMEOUT"
	codePositionUnavailable = "POSITION_UNAVAILABLE"
)

// command is a server-to-device message.
type command struct {
	Type         string  `json:"type"`
	RequestID    string  `json:"requestId,omitempty"`
	ID           string  `json:"id,omitempty"`
	HighAccuracy bool    `json:"highAccuracy,omitempty"`
	TimeoutMs    int64   `json:"timeoutMs,omitempty"`
	MaximumAgeMs int64   `json:"maximumAgeMs,omitempty"`
	SampleRate   int     `json:"sampleRate,omitempty"`
	FrameSize    int     `json:"frameSize,omitempty"`
	Pattern      []int64 `json:"pattern,omitempty"`
	Number       string  `json:"number,omitempty"`
}

// reading is a device-to-server message.
type reading struct {
	Type      string   `json:"type"`
	RequestID string   `json:"requestId,omitempty"`
	ID        string   `json:"id,omitempty"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Accuracy  float64  `json:"accuracy"`
	Timestamp int64    `json:"timestamp"` // Unix milliseconds.
	Code      string   `json:"code,omitempty"`
	Message   string   `json:"message,omitempty"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Z         *float64 `json:"z"`
	Platform  string   `json:"platform,omitempty"`
}

func positionCommand(kind, requestID, id string, opts service.PositionOptions) command {
	return command{
		Type:         kind,
		RequestID:    requestID,
		ID:           id,
		HighAccuracy: opts.HighAccuracy,
		TimeoutMs:    opts.Timeout.Milliseconds(),
		MaximumAgeMs: opts.MaximumAge.Milliseconds(),
	}
}

func (r *reading) fix() *entity.LocationFix {
	ts := time.Now()
	if r.Timestamp > 0 {
		ts = time.UnixMilli(r.Timestamp)
	}

	return &entity.LocationFix{
		Latitude:  r.Lat,
		Longitude: r.Lng,
		Accuracy:  r.Accuracy,
		Timestamp: ts,
	}
}

func (r *reading) positionErr() error {
	switch r.Code {
	case codePermissionDenied:
		return service.ErrLocationPermissionDenied
	case codeTimeout:
		return service.ErrLocationTimeout
	default:
		return service.ErrLocationUnavailable
	}
}

func (r *reading) motionSample() entity.MotionSample {
	ts := time.Now()
	if r.Timestamp > 0 {
		ts = time.UnixMilli(r.Timestamp)
	}

	return entity.MotionSample{X: r.X, Y: r.Y, Z: r.Z, Timestamp: ts}
}

func patternMillis(pattern []time.Duration) []int64 {
	out := make([]int64, len(pattern))
	for i, d := range pattern {
		out[i] = d.Milliseconds()
	}

	return out
}
