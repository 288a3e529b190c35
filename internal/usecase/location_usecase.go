// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// LocationUsecase keeps the current best fix of the device.
type LocationUsecase interface {
	// Refresh requests a one-shot high-accuracy fix, retrying once at low accuracy on timeout.
	Refresh(ctx context.Context) (*entity.LocationFix, error)
	StartWatch(ctx context.Context) error
	StopWatch()
	LastFix() *entity.LocationFix
	Snapshot() entity.LocationSnapshot
}
