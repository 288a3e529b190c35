package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// IncidentArchive stores a snapshot of every raised SOS.
type IncidentArchive interface {
	// Store writes the report and returns the key it was written under.
	Store(ctx context.Context, report *entity.IncidentReport) (string, error)

	Close() error
}
