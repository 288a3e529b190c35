package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	mockSvc "guardian/internal/mocks/service"
	mockUC "guardian/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type monitoringMocks struct {
	dispatcher *mockUC.MockDispatcherUsecase
	location   *mockUC.MockLocationUsecase
	motion     *mockUC.MockMotionUsecase
	voice      *mockUC.MockVoiceUsecase
	haptics    *mockSvc.MockHaptics
}

func newTestMonitoringService(t *testing.T) (*monitoringService, *monitoringMocks) {
	m := &monitoringMocks{
		dispatcher: mockUC.NewMockDispatcherUsecase(t),
		location:   mockUC.NewMockLocationUsecase(t),
		motion:     mockUC.NewMockMotionUsecase(t),
		voice:      mockUC.NewMockVoiceUsecase(t),
		haptics:    mockSvc.NewMockHaptics(t),
	}

	srv := NewMonitoringService(m.dispatcher, m.location, m.motion, m.voice, m.haptics, testLogger()).(*monitoringService)

	return srv, m
}

func (m *monitoringMocks) expectArm(startErr error) {
	m.dispatcher.EXPECT().SetMonitoring(mock.Anything, true).Once()
	m.location.EXPECT().StartWatch(mock.Anything).Return(startErr).Once()
	m.motion.EXPECT().Start(mock.Anything).Return(startErr).Once()
	m.location.EXPECT().Refresh(mock.Anything).Return(&entity.LocationFix{}, nil).Once()
	m.haptics.EXPECT().Vibrate(mock.Anything, 50*time.Millisecond).Return(nil).Once()
}

func (m *monitoringMocks) expectDisarm() {
	m.dispatcher.EXPECT().SetMonitoring(mock.Anything, false).Once()
	m.location.EXPECT().StopWatch().Once()
	m.motion.EXPECT().Stop().Once()
	m.voice.EXPECT().Stop().Once()
}

func TestMonitoringService_Toggle_ArmsAndDisarms(t *testing.T) {
	srv, m := newTestMonitoringService(t)
	ctx := context.Background()

	m.expectArm(nil)
	armed, err := srv.Toggle(ctx)
	srv.pending.Wait()

	require.NoError(t, err)
	assert.True(t, armed)
	assert.True(t, srv.Armed())

	m.expectDisarm()
	m.haptics.EXPECT().Vibrate(mock.Anything, 50*time.Millisecond).Return(nil).Once()

	armed, err = srv.Toggle(ctx)

	require.NoError(t, err)
	assert.False(t, armed)
	assert.False(t, srv.Armed())
}

func TestMonitoringService_Toggle_SensorFailuresDoNotBlock(t *testing.T) {
	srv, m := newTestMonitoringService(t)
	m.expectArm(errors.New("sensor missing"))

	armed, err := srv.Toggle(context.Background())
	srv.pending.Wait()

	require.NoError(t, err)
	assert.True(t, armed)
}

func TestMonitoringService_Toggle_VibrationFailureIgnored(t *testing.T) {
	srv, m := newTestMonitoringService(t)
	m.dispatcher.EXPECT().SetMonitoring(mock.Anything, true).Once()
	m.location.EXPECT().StartWatch(mock.Anything).Return(nil).Once()
	m.motion.EXPECT().Start(mock.Anything).Return(nil).Once()
	m.location.EXPECT().Refresh(mock.Anything).Return(nil, errors.New("no signal")).Once()
	m.haptics.EXPECT().Vibrate(mock.Anything, 50*time.Millisecond).Return(errors.New("no device")).Once()

	armed, err := srv.Toggle(context.Background())
	srv.pending.Wait()

	require.NoError(t, err)
	assert.True(t, armed)
}

func TestMonitoringService_Teardown(t *testing.T) {
	srv, m := newTestMonitoringService(t)
	m.expectArm(nil)

	_, err := srv.Toggle(context.Background())
	require.NoError(t, err)
	srv.pending.Wait()

	m.expectDisarm()
	m.dispatcher.EXPECT().ResetStatus(mock.Anything).Once()

	srv.Teardown(context.Background())

	assert.False(t, srv.Armed())
}

func TestMonitoringService_Teardown_WhenIdle(t *testing.T) {
	srv, m := newTestMonitoringService(t)
	m.expectDisarm()
	m.dispatcher.EXPECT().ResetStatus(mock.Anything).Once()

	srv.Teardown(context.Background())

	assert.False(t, srv.Armed())
}
