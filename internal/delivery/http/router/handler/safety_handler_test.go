package handler

import (
	"net/http"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	mockService "guardian/internal/mocks/service"
	mockUsecase "guardian/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type safetyMocks struct {
	dispatcher *mockUsecase.MockDispatcherUsecase
	monitoring *mockUsecase.MockMonitoringUsecase
	location   *mockUsecase.MockLocationUsecase
	voice      *mockUsecase.MockVoiceUsecase
	dashboard  *mockUsecase.MockDashboardUsecase
	dialer     *mockService.MockDialer
}

var safetyNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newSafetyTestEcho(t *testing.T) (*safetyMocks, *echo.Echo) {
	m := &safetyMocks{
		dispatcher: mockUsecase.NewMockDispatcherUsecase(t),
		monitoring: mockUsecase.NewMockMonitoringUsecase(t),
		location:   mockUsecase.NewMockLocationUsecase(t),
		voice:      mockUsecase.NewMockVoiceUsecase(t),
		dashboard:  mockUsecase.NewMockDashboardUsecase(t),
		dialer:     mockService.NewMockDialer(t),
	}
	h := NewSafetyHandler(SafetyHandlerParams{
		DispatcherUC: m.dispatcher,
		MonitoringUC: m.monitoring,
		LocationUC:   m.location,
		VoiceUC:      m.voice,
		DashboardUC:  m.dashboard,
		Dialer:       m.dialer,
		Logger:       testLogger(),
	})
	h.now = func() time.Time { return safetyNow }

	e := newTestEcho()
	e.GET("/dashboard", h.Dashboard)
	e.POST("/monitoring/toggle", h.ToggleMonitoring)
	e.POST("/location/refresh", h.RefreshLocation)
	e.POST("/voice/start", h.StartVoice)
	e.POST("/voice/stop", h.StopVoice)
	e.POST("/sos", h.TriggerSOS)
	e.GET("/sos/overlay", h.Overlay)
	e.POST("/sos/dial", h.DialEmergency)
	e.POST("/sos/dismiss", h.Dismiss)

	return m, e
}

func TestSafetyHandler_Dashboard(t *testing.T) {
	m, e := newSafetyTestEcho(t)
	m.dashboard.EXPECT().Dashboard(mock.Anything).Return(&entity.Dashboard{
		Status: entity.SafetyStatusMonitoring,
		Armed:  true,
		Voice:  entity.VoiceSnapshot{Listening: true, Transcription: "hello"},
	}).Once()

	rec := serve(e, http.MethodGet, "/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	dashboard := decodeData[entity.Dashboard](t, rec)
	assert.Equal(t, entity.SafetyStatusMonitoring, dashboard.Status)
	assert.True(t, dashboard.Armed)
	assert.Equal(t, "hello", dashboard.Voice.Transcription)
}

func TestSafetyHandler_ToggleMonitoring(t *testing.T) {
	m, e := newSafetyTestEcho(t)
	m.monitoring.EXPECT().Toggle(mock.Anything).Return(true, nil).Once()
	m.dispatcher.EXPECT().Status().Return(entity.SafetyStatusMonitoring).Once()

	rec := serve(e, http.MethodPost, "/monitoring/toggle", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Monitoring armed", env.Message)
	assert.Equal(t, ToggleResponse{Armed: true, Status: entity.SafetyStatusMonitoring}, decodeData[ToggleResponse](t, rec))
}

func TestSafetyHandler_RefreshLocation(t *testing.T) {
	t.Run("fix", func(t *testing.T) {
		m, e := newSafetyTestEcho(t)
		fix := &entity.LocationFix{Latitude: 40.7128, Longitude: -74.006, Accuracy: 12}
		m.location.EXPECT().Refresh(mock.Anything).Return(fix, nil).Once()

		rec := serve(e, http.MethodPost, "/location/refresh", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 40.7128, decodeData[entity.LocationFix](t, rec).Latitude, 1e-9)
	})

	t.Run("no signal", func(t *testing.T) {
		m, e := newSafetyTestEcho(t)
		m.location.EXPECT().Refresh(mock.Anything).
			Return(nil, domainerrors.ErrLocationFailed.WithDetails("timeout")).Once()

		rec := serve(e, http.MethodPost, "/location/refresh", "")

		requireErrorCode(t, rec, http.StatusServiceUnavailable, "LOCATION_FAILED")
	})
}

func TestSafetyHandler_Voice(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		m, e := newSafetyTestEcho(t)
		m.monitoring.EXPECT().Armed().Return(true).Once()
		m.voice.EXPECT().Start(mock.Anything).Return(nil).Once()
		m.voice.EXPECT().Snapshot().Return(entity.VoiceSnapshot{Listening: true}).Once()

		rec := serve(e, http.MethodPost, "/voice/start", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeData[entity.VoiceSnapshot](t, rec).Listening)
	})

	t.Run("start without key", func(t *testing.T) {
		m, e := newSafetyTestEcho(t)
		m.monitoring.EXPECT().Armed().Return(true).Once()
		m.voice.EXPECT().Start(mock.Anything).Return(domainerrors.ErrVoiceUnavailable).Once()

		rec := serve(e, http.MethodPost, "/voice/start", "")

		requireErrorCode(t, rec, http.StatusServiceUnavailable, "VOICE_UNAVAILABLE")
	})

	t.Run("start while disarmed", func(t *testing.T) {
		m, e := newSafetyTestEcho(t)
		m.monitoring.EXPECT().Armed().Return(false).Once()

		rec := serve(e, http.MethodPost, "/voice/start", "")

		requireErrorCode(t, rec, http.StatusConflict, "MONITORING_NOT_ARMED")
		m.voice.AssertNotCalled(t, "Start", mock.Anything)
	})

	t.Run("stop", func(t *testing.T) {
		m, e := newSafetyTestEcho(t)
		m.voice.EXPECT().Stop().Once()
		m.voice.EXPECT().Snapshot().Return(entity.VoiceSnapshot{}).Once()

		rec := serve(e, http.MethodPost, "/voice/stop", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeData[entity.VoiceSnapshot](t, rec).Listening)
	})
}

func TestSafetyHandler_TriggerSOS(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantType entity.AlertType
	}{
		{name: "defaults to manual", body: "", wantType: entity.AlertTypeManual},
		{name: "empty object", body: `{}`, wantType: entity.AlertTypeManual},
		{name: "shake", body: `{"type":"SHAKE"}`, wantType: entity.AlertTypeShake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, e := newSafetyTestEcho(t)
			entry := &entity.AlertLogEntry{ID: "k3j9x2m1q", Type: tt.wantType, Status: entity.AlertStatusSent}
			m.dispatcher.EXPECT().TriggerSOS(mock.Anything, tt.wantType).Return(entry, true).Once()

			rec := serve(e, http.MethodPost, "/sos", tt.body)

			require.Equal(t, http.StatusCreated, rec.Code)
			got := decodeData[TriggerResponse](t, rec)
			assert.True(t, got.Triggered)
			require.NotNil(t, got.Alert)
			assert.Equal(t, tt.wantType, got.Alert.Type)
		})
	}
}

func TestSafetyHandler_TriggerSOS_Suppressed(t *testing.T) {
	m, e := newSafetyTestEcho(t)
	m.dispatcher.EXPECT().TriggerSOS(mock.Anything, entity.AlertTypeManual).Return(nil, false).Once()

	rec := serve(e, http.MethodPost, "/sos", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SOS already active", decode(t, rec).Message)
	assert.False(t, decodeData[TriggerResponse](t, rec).Triggered)
}

func TestSafetyHandler_TriggerSOS_UnknownType(t *testing.T) {
	_, e := newSafetyTestEcho(t)

	rec := serve(e, http.MethodPost, "/sos", `{"type":"EARTHQUAKE"}`)

	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, env.Error.Details, "type")
}

func TestSafetyHandler_Overlay(t *testing.T) {
	m, e := newSafetyTestEcho(t)
	m.dispatcher.EXPECT().Overlay(safetyNow).Return(&entity.SOSOverlay{
		Active:             true,
		CountdownRemaining: 3,
		EmergencyNumber:    "911",
	}).Once()

	rec := serve(e, http.MethodGet, "/sos/overlay", "")

	require.Equal(t, http.StatusOK, rec.Code)
	overlay := decodeData[entity.SOSOverlay](t, rec)
	assert.True(t, overlay.Active)
	assert.Equal(t, 3, overlay.CountdownRemaining)
	assert.False(t, overlay.Dispatched)
}

func TestSafetyHandler_DialEmergency(t *testing.T) {
	t.Run("dials the configured number", func(t *testing.T) {
		m, e := newSafetyTestEcho(t)
		m.dispatcher.EXPECT().Overlay(safetyNow).Return(&entity.SOSOverlay{EmergencyNumber: "112"}).Once()
		m.dialer.EXPECT().Dial(mock.Anything, "112").Return(nil).Once()

		rec := serve(e, http.MethodPost, "/sos/dial", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]string{"number": "112"}, decodeData[map[string]string](t, rec))
	})

	t.Run("no device", func(t *testing.T) {
		m, e := newSafetyTestEcho(t)
		m.dispatcher.EXPECT().Overlay(safetyNow).Return(&entity.SOSOverlay{EmergencyNumber: "911"}).Once()
		m.dialer.EXPECT().Dial(mock.Anything, "911").Return(domainerrors.ErrDeviceNotConnected).Once()

		rec := serve(e, http.MethodPost, "/sos/dial", "")

		requireErrorCode(t, rec, http.StatusServiceUnavailable, "DEVICE_NOT_CONNECTED")
	})
}

func TestSafetyHandler_Dismiss(t *testing.T) {
	m, e := newSafetyTestEcho(t)
	m.dispatcher.EXPECT().ResetStatus(mock.Anything).Once()
	m.dispatcher.EXPECT().Status().Return(entity.SafetyStatusSecure).Once()

	rec := serve(e, http.MethodPost, "/sos/dismiss", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]entity.SafetyStatus{"status": entity.SafetyStatusSecure}, decodeData[map[string]entity.SafetyStatus](t, rec))
}
