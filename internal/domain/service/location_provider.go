package service

import (
	"context"
	"errors"
	"time"

	"guardian/internal/domain/entity"
)

// Classified position errors reported by a LocationProvider.
var (
	ErrLocationPermissionDenied = errors.New("location permission denied")
	ErrLocationTimeout          = errors.New("location request timed out")
	ErrLocationUnavailable      = errors.New("location unavailable")
)

// PositionOptions mirrors the device geolocation request options.
type PositionOptions struct {
	HighAccuracy bool          `json:"highAccuracy"`
	Timeout      time.Duration `json:"timeout"`
	MaximumAge   time.Duration `json:"maximumAge"`
}

// PositionUpdate is one result of a continuous watch. Exactly one of Fix and Err is set.
type PositionUpdate struct {
	Fix *entity.LocationFix
	Err error
}

// LocationProvider wraps the device location service.
type LocationProvider interface {
	// CurrentPosition requests a single fix and blocks until it arrives, fails, or opts.Timeout elapses.
	CurrentPosition(ctx context.Context, opts PositionOptions) (*entity.LocationFix, error)

	// Watch starts continuous updates until the stream is closed.
	Watch(ctx context.Context, opts PositionOptions) (Stream[PositionUpdate], error)
}
