// Package database opens the relational backend of the key-value store.
package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Open connects to the database selected by storage.driver and migrates the kv_entries table.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Storage == nil {
		return nil, errors.New("storage config is required")
	}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Storage.Driver {
	case constants.StorageDriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.Storage.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open sqlite database %s", cfg.Storage.SQLitePath)
		}
	case constants.StorageDriverPostgres:
		if cfg.Storage.Postgres == nil {
			return nil, errors.New("storage.postgres config is required for the postgres driver")
		}
		db, err = pgLib.New(cfg.Storage.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
	default:
		return nil, errors.Errorf("storage driver %q is not backed by a database", cfg.Storage.Driver)
	}

	db = db.Session(&gorm.Session{
		// Every write is a single upsert of one row.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	if cfg.Storage.Driver == constants.StorageDriverSQLite {
		// A second connection to ":memory:" would see an empty database.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&model.KVEntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return db, nil
}

// Manage ties the connection pool to the application lifecycle.
func Manage(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				cancelMonitor()

				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Storage pool wait", attrs...)
			}

			prev = cur
		}
	}
}
