package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	mockRepo "guardian/internal/mocks/repository"
	mockSvc "guardian/internal/mocks/service"
	mockUC "guardian/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherMocks struct {
	alertRepo   *mockRepo.MockAlertLogRepository
	location    *mockUC.MockLocationUsecase
	contacts    *mockUC.MockContactUsecase
	profile     *mockUC.MockProfileUsecase
	haptics     *mockSvc.MockHaptics
	publisher   *mockSvc.MockEventPublisher
	archive     *mockSvc.MockIncidentArchive
	metrics     *mockSvc.MockMetricsRecorder
	broadcaster *mockSvc.MockStateBroadcaster
}

func newDispatcherMocks(t *testing.T) *dispatcherMocks {
	return &dispatcherMocks{
		alertRepo:   mockRepo.NewMockAlertLogRepository(t),
		location:    mockUC.NewMockLocationUsecase(t),
		contacts:    mockUC.NewMockContactUsecase(t),
		profile:     mockUC.NewMockProfileUsecase(t),
		haptics:     mockSvc.NewMockHaptics(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		archive:     mockSvc.NewMockIncidentArchive(t),
		metrics:     mockSvc.NewMockMetricsRecorder(t),
		broadcaster: quietBroadcaster(t),
	}
}

func (m *dispatcherMocks) build(cfg *config.Config) *alertDispatcher {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewAlertDispatcher(DispatcherParams{
		Config:      cfg,
		AlertRepo:   m.alertRepo,
		Location:    m.location,
		Contacts:    m.contacts,
		Profile:     m.profile,
		Haptics:     m.haptics,
		Publisher:   m.publisher,
		Archive:     m.archive,
		Metrics:     m.metrics,
		Broadcaster: m.broadcaster,
		Logger:      testLogger(),
	}).(*alertDispatcher)
}

// expectSideEffects allows the asynchronous fan-out of any number of alerts.
func (m *dispatcherMocks) expectSideEffects() {
	m.haptics.EXPECT().Vibrate(mock.Anything, durationsAsArgs(sosVibration)...).Return(nil).Maybe()
	m.metrics.EXPECT().AlertRaised(mock.Anything).Maybe()
	m.profile.EXPECT().GetProfile(mock.Anything).Return(entity.DefaultProfile()).Maybe()
	m.contacts.EXPECT().ListContacts(mock.Anything).Return(entity.DefaultContacts()).Maybe()
	m.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	m.archive.EXPECT().Store(mock.Anything, mock.Anything).Return("", nil).Maybe()
}

func TestAlertDispatcher_New_RestoresLog(t *testing.T) {
	m := newDispatcherMocks(t)
	stored := []*entity.AlertLogEntry{{ID: "old", Type: entity.AlertTypeManual, Status: entity.AlertStatusSent}}
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(stored, nil)

	srv := m.build(nil)

	assert.Equal(t, entity.SafetyStatusSecure, srv.Status())
	assert.Equal(t, stored, srv.Alerts())
}

func TestAlertDispatcher_New_LoadFailureStartsEmpty(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, errors.New("disk gone"))

	srv := m.build(nil)

	assert.Empty(t, srv.Alerts())
}

func TestAlertDispatcher_TriggerSOS_RecordsAlert(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)

	fix := &entity.LocationFix{Latitude: 40.7128, Longitude: -74.006, Accuracy: 12}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	profile := &entity.UserProfile{Name: "Jane Doe", Phone: "5551234567"}

	m.location.EXPECT().LastFix().Return(fix)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.MatchedBy(func(entries []*entity.AlertLogEntry) bool {
		return len(entries) == 1 && entries[0].ID == "abc123xyz"
	})).Return(nil)
	m.haptics.EXPECT().Vibrate(mock.Anything, durationsAsArgs(sosVibration)...).Return(nil)
	m.metrics.EXPECT().AlertRaised("FALL")
	m.profile.EXPECT().GetProfile(mock.Anything).Return(profile)
	m.contacts.EXPECT().ListContacts(mock.Anything).Return(entity.DefaultContacts())
	m.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.MatchedBy(func(event *service.AlertEvent) bool {
		return event.AlertID == "abc123xyz" &&
			event.Type == "FALL" &&
			event.Name == "Jane Doe" &&
			event.Phone == "5551234567" &&
			event.Latitude != nil && *event.Latitude == 40.7128 &&
			event.RaisedAt.Equal(now)
	})).Return(nil)
	m.archive.EXPECT().Store(mock.Anything, mock.MatchedBy(func(report *entity.IncidentReport) bool {
		return report.Alert.ID == "abc123xyz" && report.Profile == profile && len(report.Contacts) == 2
	})).Return("incidents/x.json", nil)

	srv := m.build(nil)
	srv.now = func() time.Time { return now }
	srv.newID = func() (string, error) { return "abc123xyz", nil }

	entry, ok := srv.TriggerSOS(context.Background(), entity.AlertTypeFall)
	srv.pending.Wait()

	require.True(t, ok)
	assert.Equal(t, "abc123xyz", entry.ID)
	assert.Equal(t, entity.AlertTypeFall, entry.Type)
	assert.Equal(t, entity.AlertStatusSent, entry.Status)
	assert.Equal(t, "Alert manually initiated via fall", entry.Details)
	assert.Equal(t, now, entry.Timestamp)
	assert.Equal(t, fix, entry.Location)
	assert.NotSame(t, fix, entry.Location)
	assert.Equal(t, entity.SafetyStatusSOSTriggered, srv.Status())
	assert.Equal(t, []*entity.AlertLogEntry{entry}, srv.Alerts())
}

func TestAlertDispatcher_TriggerSOS_VoiceDetails(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)
	m.location.EXPECT().LastFix().Return(nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(nil)
	m.expectSideEffects()

	srv := m.build(nil)
	entry, ok := srv.TriggerSOS(context.Background(), entity.AlertTypeVoice)
	srv.pending.Wait()

	require.True(t, ok)
	assert.Equal(t, "Acoustic pattern matched distress signature", entry.Details)
	assert.Nil(t, entry.Location)
}

func TestAlertDispatcher_TriggerSOS_SuppressedWhileActive(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)
	m.location.EXPECT().LastFix().Return(nil).Once()
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(nil).Once()
	m.expectSideEffects()

	srv := m.build(nil)
	ctx := context.Background()

	first, ok := srv.TriggerSOS(ctx, entity.AlertTypeManual)
	require.True(t, ok)

	for _, alertType := range []entity.AlertType{entity.AlertTypeFall, entity.AlertTypeVoice, entity.AlertTypeManual} {
		entry, ok := srv.TriggerSOS(ctx, alertType)
		assert.False(t, ok)
		assert.Nil(t, entry)
	}
	srv.pending.Wait()

	assert.Equal(t, []*entity.AlertLogEntry{first}, srv.Alerts())
}

func TestAlertDispatcher_TriggerSOS_NewestFirstAfterReset(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)
	m.location.EXPECT().LastFix().Return(nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(nil)
	m.expectSideEffects()

	srv := m.build(nil)
	ctx := context.Background()

	first, ok := srv.TriggerSOS(ctx, entity.AlertTypeManual)
	require.True(t, ok)
	srv.ResetStatus(ctx)

	second, ok := srv.TriggerSOS(ctx, entity.AlertTypeFall)
	require.True(t, ok)
	srv.pending.Wait()

	alerts := srv.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, second.ID, alerts[0].ID)
	assert.Equal(t, first.ID, alerts[1].ID)
}

func TestAlertDispatcher_TriggerSOS_PersistFailureKeepsAlert(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)
	m.location.EXPECT().LastFix().Return(nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))
	m.expectSideEffects()

	srv := m.build(nil)
	_, ok := srv.TriggerSOS(context.Background(), entity.AlertTypeManual)
	srv.pending.Wait()

	assert.True(t, ok)
	assert.Len(t, srv.Alerts(), 1)
	assert.Equal(t, entity.SafetyStatusSOSTriggered, srv.Status())
}

func TestAlertDispatcher_TriggerSOS_SideEffectFailuresAreLogged(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)
	m.location.EXPECT().LastFix().Return(nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(nil)
	m.haptics.EXPECT().Vibrate(mock.Anything, durationsAsArgs(sosVibration)...).Return(errors.New("no device"))
	m.metrics.EXPECT().AlertRaised("MANUAL")
	m.profile.EXPECT().GetProfile(mock.Anything).Return(nil)
	m.contacts.EXPECT().ListContacts(mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	m.archive.EXPECT().Store(mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

	srv := m.build(nil)
	entry, ok := srv.TriggerSOS(context.Background(), entity.AlertTypeManual)
	srv.pending.Wait()

	require.True(t, ok)
	assert.Equal(t, entity.AlertStatusSent, entry.Status)
}

func TestAlertDispatcher_SetMonitoring(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)
	m.location.EXPECT().LastFix().Return(nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(nil)
	m.expectSideEffects()

	srv := m.build(nil)
	ctx := context.Background()

	srv.SetMonitoring(ctx, true)
	assert.Equal(t, entity.SafetyStatusMonitoring, srv.Status())

	srv.SetMonitoring(ctx, false)
	assert.Equal(t, entity.SafetyStatusSecure, srv.Status())

	_, ok := srv.TriggerSOS(ctx, entity.AlertTypeManual)
	require.True(t, ok)
	srv.pending.Wait()

	srv.SetMonitoring(ctx, false)
	assert.Equal(t, entity.SafetyStatusSOSTriggered, srv.Status())

	srv.ResetStatus(ctx)
	assert.Equal(t, entity.SafetyStatusSecure, srv.Status())
	assert.Len(t, srv.Alerts(), 1)
}

func TestAlertDispatcher_ClearAlerts(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return([]*entity.AlertLogEntry{{ID: "a"}}, nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, []*entity.AlertLogEntry{}).Return(nil)

	srv := m.build(nil)
	require.NoError(t, srv.ClearAlerts(context.Background()))

	assert.Empty(t, srv.Alerts())
	assert.Equal(t, entity.SafetyStatusSecure, srv.Status())
}

func TestAlertDispatcher_ClearAlerts_SaveFailureKeepsLog(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return([]*entity.AlertLogEntry{{ID: "a"}}, nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(errors.New("read only"))

	srv := m.build(nil)
	assert.Error(t, srv.ClearAlerts(context.Background()))
	assert.Len(t, srv.Alerts(), 1)
}

func TestAlertDispatcher_Overlay(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)
	m.location.EXPECT().LastFix().Return(nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(nil)
	m.expectSideEffects()

	triggeredAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := m.build(&config.Config{SOS: &config.SOSConfig{EmergencyNumber: "112"}})
	srv.now = func() time.Time { return triggeredAt }

	idle := srv.Overlay(triggeredAt)
	assert.False(t, idle.Active)
	assert.Equal(t, "112", idle.EmergencyNumber)

	entry, ok := srv.TriggerSOS(context.Background(), entity.AlertTypeShake)
	require.True(t, ok)
	srv.pending.Wait()

	tests := []struct {
		name       string
		elapsed    time.Duration
		remaining  int
		dispatched bool
	}{
		{name: "just raised", elapsed: 0, remaining: 5},
		{name: "partial second rounds up", elapsed: 1500 * time.Millisecond, remaining: 4},
		{name: "last second", elapsed: 4900 * time.Millisecond, remaining: 1},
		{name: "dispatched", elapsed: 5 * time.Second, dispatched: true},
		{name: "long after", elapsed: time.Minute, dispatched: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overlay := srv.Overlay(triggeredAt.Add(tt.elapsed))
			assert.True(t, overlay.Active)
			assert.Equal(t, entry, overlay.Alert)
			assert.Equal(t, tt.remaining, overlay.CountdownRemaining)
			assert.Equal(t, tt.dispatched, overlay.Dispatched)
		})
	}
}

func TestAlertDispatcher_Shutdown_WaitsForSideEffects(t *testing.T) {
	m := newDispatcherMocks(t)
	m.alertRepo.EXPECT().LoadAlertLog(mock.Anything).Return(nil, nil)
	m.alertRepo.EXPECT().SaveAlertLog(mock.Anything, mock.Anything).Return(nil)
	m.location.EXPECT().LastFix().Return(nil)
	m.haptics.EXPECT().Vibrate(mock.Anything, durationsAsArgs(sosVibration)...).Return(nil)
	m.metrics.EXPECT().AlertRaised("MANUAL")
	m.profile.EXPECT().GetProfile(mock.Anything).Return(entity.DefaultProfile())
	m.contacts.EXPECT().ListContacts(mock.Anything).Return(entity.DefaultContacts())
	m.archive.EXPECT().Store(mock.Anything, mock.Anything).Return("", nil)

	release := make(chan struct{})
	m.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.AlertEvent) { <-release }).
		Return(nil)

	srv := m.build(nil)
	_, ok := srv.TriggerSOS(context.Background(), entity.AlertTypeManual)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, srv.Shutdown(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
