// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// DashboardUsecase assembles read models across the sentries.
type DashboardUsecase interface {
	Dashboard(ctx context.Context) *entity.Dashboard
	// AlertMap returns every located alert as a GeoJSON point feature, newest first.
	AlertMap(ctx context.Context) *geojson.FeatureCollection
}
