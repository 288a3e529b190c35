package kv

import (
	"context"
	"log/slog"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/database"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the key-value store.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New builds the store selected by storage.driver.
func New(params Params) (repository.KeyValueStore, error) {
	driver := constants.StorageDriverSQLite
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	var (
		store repository.KeyValueStore
		err   error
	)

	switch driver {
	case constants.StorageDriverSQLite, constants.StorageDriverPostgres:
		db, openErr := database.Open(params.Config, params.Logger)
		if openErr != nil {
			return nil, openErr
		}
		if err := database.Manage(params.Lc, db, params.Logger); err != nil {
			return nil, err
		}

		params.Logger.Info("Key-value store ready", slog.String("driver", driver))

		return NewGormStore(db), nil
	case constants.StorageDriverMemory:
		store = NewCacheStore()
	case constants.StorageDriverRedis:
		store, err = NewRedisStore(params.Ctx, params.Config.Storage.Redis)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("Key-value store ready", slog.String("driver", driver))

	return store, nil
}
