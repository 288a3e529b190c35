package repository

import (
	"context"

	"guardian/internal/domain/entity"
)

// AlertLogRepository persists the alert log, newest entry first.
type AlertLogRepository interface {
	// LoadAlertLog returns the stored log, or an empty log when nothing valid is stored.
	LoadAlertLog(ctx context.Context) ([]*entity.AlertLogEntry, error)

	// SaveAlertLog overwrites the stored log.
	SaveAlertLog(ctx context.Context, entries []*entity.AlertLogEntry) error
}
