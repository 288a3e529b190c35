// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// MotionUsecase is the fall detector.
type MotionUsecase interface {
	Start(ctx context.Context) error
	Stop()
	// Ingest processes one sample and reports whether a FALL trigger request was issued.
	Ingest(ctx context.Context, sample entity.MotionSample) bool
	Window() []entity.MotionReading
	Active() bool
}
