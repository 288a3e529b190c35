// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"
	"guardian/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	alertIDLength          = 9
	sideEffectTimeout      = 15 * time.Second
	defaultCountdown       = 5 * time.Second
	defaultEmergencyNumber = "911"
)

// sosVibration is played on the device once an alert is raised.
var sosVibration = []time.Duration{
	500 * time.Millisecond, 200 * time.Millisecond,
	500 * time.Millisecond, 200 * time.Millisecond,
	500 * time.Millisecond,
}

// DispatcherParams holds the dependencies of the alert dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Config      *config.Config
	AlertRepo   repository.AlertLogRepository
	Location    usecase.LocationUsecase
	Contacts    usecase.ContactUsecase
	Profile     usecase.ProfileUsecase
	Haptics     service.Haptics
	Publisher   service.EventPublisher
	Archive     service.IncidentArchive
	Metrics     service.MetricsRecorder
	Broadcaster service.StateBroadcaster
	Logger      *slog.Logger
}

// alertDispatcher implements the DispatcherUsecase interface.
type alertDispatcher struct {
	mu          sync.Mutex
	status      entity.SafetyStatus
	alerts      []*entity.AlertLogEntry
	triggeredAt time.Time

	alertRepo   repository.AlertLogRepository
	location    usecase.LocationUsecase
	contacts    usecase.ContactUsecase
	profile     usecase.ProfileUsecase
	haptics     service.Haptics
	publisher   service.EventPublisher
	archive     service.IncidentArchive
	metrics     service.MetricsRecorder
	broadcaster service.StateBroadcaster
	logger      *slog.Logger

	countdown       time.Duration
	emergencyNumber string

	now     func() time.Time
	newID   func() (string, error)
	pending sync.WaitGroup
}

// NewAlertDispatcher is the constructor for alertDispatcher. It restores the persisted alert log.
func NewAlertDispatcher(params DispatcherParams) usecase.DispatcherUsecase {
	srv := &alertDispatcher{
		status:          entity.SafetyStatusSecure,
		alertRepo:       params.AlertRepo,
		location:        params.Location,
		contacts:        params.Contacts,
		profile:         params.Profile,
		haptics:         params.Haptics,
		publisher:       params.Publisher,
		archive:         params.Archive,
		metrics:         params.Metrics,
		broadcaster:     params.Broadcaster,
		logger:          params.Logger,
		countdown:       defaultCountdown,
		emergencyNumber: defaultEmergencyNumber,
		now:             time.Now,
		newID: func() (string, error) {
			return util.RandomID(alertIDLength)
		},
	}

	if sos := params.Config.SOS; sos != nil {
		if sos.Countdown > 0 {
			srv.countdown = sos.Countdown
		}
		if sos.EmergencyNumber != "" {
			srv.emergencyNumber = sos.EmergencyNumber
		}
	}

	alerts, err := params.AlertRepo.LoadAlertLog(context.Background())
	if err != nil {
		srv.logger.Warn("Failed to load alert log, starting empty", slog.Any("error", err))
	}
	srv.alerts = alerts

	return srv
}

// TriggerSOS raises an alert unless one is already active.
func (srv *alertDispatcher) TriggerSOS(ctx context.Context, alertType entity.AlertType) (*entity.AlertLogEntry, bool) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	srv.mu.Lock()
	if srv.status == entity.SafetyStatusSOSTriggered {
		srv.mu.Unlock()
		logger.Debug("SOS already active, trigger suppressed", slog.String("type", string(alertType)))

		return nil, false
	}

	id, err := srv.newID()
	if err != nil {
		// Fall back to a time-based id.
		logger.Error("Failed to generate alert id", slog.Any("error", err))
		id = srv.now().Format("150405.00")
	}

	now := srv.now()
	entry := &entity.AlertLogEntry{
		ID:        id,
		Type:      alertType,
		Timestamp: now,
		Location:  srv.location.LastFix().Clone(),
		Status:    entity.AlertStatusSent,
		Details:   alertType.AlertDetails(),
	}

	alerts := make([]*entity.AlertLogEntry, 0, len(srv.alerts)+1)
	alerts = append(alerts, entry)
	alerts = append(alerts, srv.alerts...)
	srv.alerts = alerts

	if err := srv.alertRepo.SaveAlertLog(ctx, alerts); err != nil {
		logger.Error("Failed to persist alert log", slog.Any("error", err))
	}

	srv.status = entity.SafetyStatusSOSTriggered
	srv.triggeredAt = now
	srv.mu.Unlock()

	logger.Warn("SOS triggered",
		slog.String("alert_id", entry.ID),
		slog.String("type", string(entry.Type)),
	)

	if err := srv.haptics.Vibrate(ctx, sosVibration...); err != nil {
		logger.Debug("SOS vibration skipped", slog.Any("error", err))
	}

	srv.broadcaster.Broadcast(entity.StateEvent{Type: entity.StateEventAlert, Payload: entry})
	srv.broadcaster.Broadcast(entity.StateEvent{Type: entity.StateEventStatus, Payload: entity.SafetyStatusSOSTriggered})

	srv.dispatchSideEffects(ctx, entry)

	return entry, true
}

// dispatchSideEffects fans the alert out to the event bus, the archive and metrics without holding up the caller.
func (srv *alertDispatcher) dispatchSideEffects(ctx context.Context, entry *entity.AlertLogEntry) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	base := context.WithoutCancel(ctx)

	srv.metrics.AlertRaised(string(entry.Type))

	srv.pending.Add(1)
	go func() {
		defer srv.pending.Done()

		sideCtx, cancel := context.WithTimeout(base, sideEffectTimeout)
		defer cancel()

		profile := srv.profile.GetProfile(sideCtx)
		contacts := srv.contacts.ListContacts(sideCtx)

		if err := srv.publisher.PublishAlertEvent(sideCtx, newAlertEvent(requestID, entry, profile)); err != nil {
			srv.logger.Error("Failed to publish alert event",
				slog.String("alert_id", entry.ID),
				slog.Any("error", err),
			)
		}

		key, err := srv.archive.Store(sideCtx, &entity.IncidentReport{Alert: entry, Profile: profile, Contacts: contacts})
		if err != nil {
			srv.logger.Error("Failed to archive incident report",
				slog.String("alert_id", entry.ID),
				slog.Any("error", err),
			)

			return
		}
		if key != "" {
			srv.logger.Info("Incident report archived", slog.String("alert_id", entry.ID), slog.String("key", key))
		}
	}()
}

func newAlertEvent(requestID string, entry *entity.AlertLogEntry, profile *entity.UserProfile) *service.AlertEvent {
	event := &service.AlertEvent{
		RequestID: requestID,
		AlertID:   entry.ID,
		Type:      string(entry.Type),
		Details:   entry.Details,
		RaisedAt:  entry.Timestamp,
	}
	if profile != nil {
		event.Name = profile.Name
		event.Phone = profile.Phone
	}
	if fix := entry.Location; fix != nil {
		lat, lng, acc := fix.Latitude, fix.Longitude, fix.Accuracy
		event.Latitude = &lat
		event.Longitude = &lng
		event.Accuracy = &acc
	}

	return event
}

// ResetStatus returns to SECURE from any state. The log is untouched.
func (srv *alertDispatcher) ResetStatus(ctx context.Context) {
	srv.mu.Lock()
	srv.status = entity.SafetyStatusSecure
	srv.triggeredAt = time.Time{}
	srv.mu.Unlock()

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Safety status reset")
	srv.broadcaster.Broadcast(entity.StateEvent{Type: entity.StateEventStatus, Payload: entity.SafetyStatusSecure})
}

// SetMonitoring switches between MONITORING and SECURE. An active SOS is kept until dismissed.
func (srv *alertDispatcher) SetMonitoring(_ context.Context, armed bool) {
	srv.mu.Lock()
	if srv.status == entity.SafetyStatusSOSTriggered {
		srv.mu.Unlock()

		return
	}

	status := entity.SafetyStatusSecure
	if armed {
		status = entity.SafetyStatusMonitoring
	}
	srv.status = status
	srv.mu.Unlock()

	srv.broadcaster.Broadcast(entity.StateEvent{Type: entity.StateEventStatus, Payload: status})
}

func (srv *alertDispatcher) Status() entity.SafetyStatus {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.status
}

// Alerts returns a copy of the log, newest first.
func (srv *alertDispatcher) Alerts() []*entity.AlertLogEntry {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	alerts := make([]*entity.AlertLogEntry, len(srv.alerts))
	copy(alerts, srv.alerts)

	return alerts
}

// ClearAlerts empties the log and persists the empty list.
func (srv *alertDispatcher) ClearAlerts(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.alertRepo.SaveAlertLog(ctx, []*entity.AlertLogEntry{}); err != nil {
		return err
	}
	srv.alerts = []*entity.AlertLogEntry{}

	return nil
}

// Overlay reports the countdown of the active alert as of now.
func (srv *alertDispatcher) Overlay(now time.Time) *entity.SOSOverlay {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	overlay := &entity.SOSOverlay{EmergencyNumber: srv.emergencyNumber}
	if srv.status != entity.SafetyStatusSOSTriggered {
		return overlay
	}

	overlay.Active = true
	if len(srv.alerts) > 0 {
		overlay.Alert = srv.alerts[0]
	}

	remaining := srv.countdown - now.Sub(srv.triggeredAt)
	if remaining <= 0 {
		overlay.Dispatched = true

		return overlay
	}
	overlay.CountdownRemaining = int(math.Ceil(remaining.Seconds()))

	return overlay
}

// Shutdown waits for the publish and archive goroutines of earlier alerts.
func (srv *alertDispatcher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "alert side effects still in flight")
	}
}
