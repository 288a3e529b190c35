// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// ProfileUsecase defines the interface for the medical profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context) *entity.UserProfile
	// UpdateProfile fully overwrites the stored profile.
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error
	SetPhone(ctx context.Context, phone string) error
	// MedicalIDCard renders the profile and contacts as a QR code PNG.
	MedicalIDCard(ctx context.Context) ([]byte, error)
}
