// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// VoiceUsecase is the acoustic distress detector backed by a live AI session.
type VoiceUsecase interface {
	Start(ctx context.Context) error
	Stop()
	Snapshot() entity.VoiceSnapshot
}
