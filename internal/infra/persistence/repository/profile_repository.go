package repository

import (
	"context"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/kv"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	store repository.KeyValueStore
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store repository.KeyValueStore) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (repo *profileRepository) LoadProfile(ctx context.Context) (*entity.UserProfile, error) {
	profile, err := kv.Load(ctx, repo.store, constants.StorageKeyProfile, entity.DefaultProfile())
	if profile == nil {
		return entity.DefaultProfile(), err
	}

	return profile, err
}

func (repo *profileRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) error {
	return kv.Save(ctx, repo.store, constants.StorageKeyProfile, profile)
}
