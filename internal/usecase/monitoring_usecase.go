// Package usecase contains the application-specific business rules.
package usecase

import "context"

// MonitoringUsecase arms and disarms the sentries as one unit.
type MonitoringUsecase interface {
	// Toggle flips the armed state and returns the new value.
	Toggle(ctx context.Context) (bool, error)
	Armed() bool
	// Teardown disarms, releases every sensor acquisition and resets the status to SECURE.
	Teardown(ctx context.Context)
}
