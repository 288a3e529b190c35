package kv

import (
	"context"
	"time"

	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStore keeps each key as one row of the kv_entries table.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore is the constructor for gormStore.
func NewGormStore(db *gorm.DB) repository.KeyValueStore {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntryModel

	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}

	return []byte(entry.Value), nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := &model.KVEntryModel{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write key "+key)
	}

	return nil
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&model.KVEntryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete key "+key)
	}

	return nil
}

// Close is a no-op; the connection pool is closed by the lifecycle hook registered in database.Manage.
func (s *gormStore) Close() error {
	return nil
}
