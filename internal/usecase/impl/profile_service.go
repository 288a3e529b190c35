package impl

import (
	"context"
	"log/slog"
	"sync"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	mu      sync.Mutex
	profile *entity.UserProfile

	profileRepo repository.ProfileRepository
	contacts    usecase.ContactUsecase
	qrCode      service.QRCodeService
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService. It restores the persisted profile.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	contacts usecase.ContactUsecase,
	qrCode service.QRCodeService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	profile, err := profileRepo.LoadProfile(context.Background())
	if err != nil {
		logger.Warn("Failed to load profile, using defaults", slog.Any("error", err))
	}
	if profile == nil {
		profile = entity.DefaultProfile()
	}

	return &profileService{
		profile:     profile,
		profileRepo: profileRepo,
		contacts:    contacts,
		qrCode:      qrCode,
		logger:      logger,
	}
}

// GetProfile returns a copy of the profile.
func (srv *profileService) GetProfile(_ context.Context) *entity.UserProfile {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	profile := *srv.profile

	return &profile
}

// UpdateProfile fully overwrites the stored profile.
func (srv *profileService) UpdateProfile(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil {
		return domainerrors.ErrValidationFailed.WithDetails("profile is required")
	}

	updated := *profile

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.profileRepo.SaveProfile(ctx, &updated); err != nil {
		return errors.Wrap(err, "failed to save profile")
	}
	srv.profile = &updated

	srv.logger.Info("Profile updated")

	return nil
}

// SetPhone records the phone number the user logged in with.
func (srv *profileService) SetPhone(ctx context.Context, phone string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	updated := *srv.profile
	updated.Phone = phone

	if err := srv.profileRepo.SaveProfile(ctx, &updated); err != nil {
		return errors.Wrap(err, "failed to save profile")
	}
	srv.profile = &updated

	return nil
}

// MedicalIDCard renders the profile and personal contacts as a QR code PNG.
func (srv *profileService) MedicalIDCard(ctx context.Context) ([]byte, error) {
	png, err := srv.qrCode.GenerateMedicalID(srv.GetProfile(ctx), srv.contacts.ListContacts(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate medical ID")
	}

	return png, nil
}
