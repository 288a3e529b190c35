// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/service"
)

// RelayUsecase forwards alert events to caregivers.
type RelayUsecase interface {
	RelayAlert(ctx context.Context, event *service.AlertEvent) (*RelayResult, error)
}

// RelayResult reports how many caregivers were reached.
type RelayResult struct {
	Delivered     int      `json:"delivered"`
	Failed        int      `json:"failed"`
	InvalidTokens []string `json:"invalid_tokens,omitempty"`
}
