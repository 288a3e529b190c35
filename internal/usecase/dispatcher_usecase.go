// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"guardian/internal/domain/entity"
)

// DispatcherUsecase is the safety state machine. It is the only writer of the safety status and the alert log.
type DispatcherUsecase interface {
	// TriggerSOS raises an alert unless one is already active.
	// It returns the new entry and true, or nil and false when the request was suppressed.
	TriggerSOS(ctx context.Context, alertType entity.AlertType) (*entity.AlertLogEntry, bool)
	ResetStatus(ctx context.Context)
	SetMonitoring(ctx context.Context, armed bool)
	Status() entity.SafetyStatus
	Alerts() []*entity.AlertLogEntry
	ClearAlerts(ctx context.Context) error
	Overlay(now time.Time) *entity.SOSOverlay
	// Shutdown waits for in-flight alert side effects until ctx is done.
	Shutdown(ctx context.Context) error
}
