package repository

import (
	"context"

	"guardian/internal/domain/entity"
)

// ProfileRepository persists the singleton user profile.
type ProfileRepository interface {
	// LoadProfile returns the stored profile, or the default profile when nothing valid is stored.
	LoadProfile(ctx context.Context) (*entity.UserProfile, error)

	// SaveProfile overwrites the stored profile.
	SaveProfile(ctx context.Context, profile *entity.UserProfile) error
}
