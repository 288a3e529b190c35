package impl

import (
	"context"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/usecase"

	"github.com/paulmach/orb/geojson"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	dispatcher usecase.DispatcherUsecase
	monitoring usecase.MonitoringUsecase
	location   usecase.LocationUsecase
	motion     usecase.MotionUsecase
	voice      usecase.VoiceUsecase
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	dispatcher usecase.DispatcherUsecase,
	monitoring usecase.MonitoringUsecase,
	location usecase.LocationUsecase,
	motion usecase.MotionUsecase,
	voice usecase.VoiceUsecase,
) usecase.DashboardUsecase {
	return &dashboardService{
		dispatcher: dispatcher,
		monitoring: monitoring,
		location:   location,
		motion:     motion,
		voice:      voice,
	}
}

func (srv *dashboardService) Dashboard(_ context.Context) *entity.Dashboard {
	dashboard := &entity.Dashboard{
		Status:       srv.dispatcher.Status(),
		Armed:        srv.monitoring.Armed(),
		Location:     srv.location.Snapshot(),
		Voice:        srv.voice.Snapshot(),
		Acceleration: srv.motion.Window(),
	}

	if alerts := srv.dispatcher.Alerts(); len(alerts) > 0 {
		dashboard.LastAlert = alerts[0]
	}

	return dashboard
}

// AlertMap returns every located alert as a point feature, newest first.
func (srv *dashboardService) AlertMap(_ context.Context) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()

	for _, alert := range srv.dispatcher.Alerts() {
		if alert.Location == nil {
			continue
		}

		feature := geojson.NewFeature(alert.Location.Point())
		feature.ID = alert.ID
		feature.Properties["type"] = string(alert.Type)
		feature.Properties["status"] = string(alert.Status)
		feature.Properties["details"] = alert.Details
		feature.Properties["timestamp"] = alert.Timestamp.UTC().Format(time.RFC3339)
		feature.Properties["accuracy"] = alert.Location.Accuracy

		collection.Append(feature)
	}

	return collection
}
