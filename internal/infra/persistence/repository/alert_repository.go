package repository

import (
	"context"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/kv"
)

// alertLogRepository implements the repository.AlertLogRepository interface.
type alertLogRepository struct {
	store repository.KeyValueStore
}

// NewAlertLogRepository is the constructor for alertLogRepository.
func NewAlertLogRepository(store repository.KeyValueStore) repository.AlertLogRepository {
	return &alertLogRepository{store: store}
}

func (repo *alertLogRepository) LoadAlertLog(ctx context.Context) ([]*entity.AlertLogEntry, error) {
	logs, err := kv.Load(ctx, repo.store, constants.StorageKeyLogs, []*entity.AlertLogEntry{})
	if logs == nil || hasNilEntry(logs) {
		return []*entity.AlertLogEntry{}, err
	}

	return logs, err
}

func (repo *alertLogRepository) SaveAlertLog(ctx context.Context, logs []*entity.AlertLogEntry) error {
	if logs == nil {
		logs = []*entity.AlertLogEntry{}
	}

	return kv.Save(ctx, repo.store, constants.StorageKeyLogs, logs)
}

// hasNilEntry reports a stored list with a null element, which is treated as malformed.
func hasNilEntry[T any](items []*T) bool {
	for _, item := range items {
		if item == nil {
			return true
		}
	}

	return false
}
