package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"
)

const toggleVibration = 50 * time.Millisecond

// monitoringService implements the MonitoringUsecase interface.
type monitoringService struct {
	mu    sync.Mutex
	armed bool

	dispatcher usecase.DispatcherUsecase
	location   usecase.LocationUsecase
	motion     usecase.MotionUsecase
	voice      usecase.VoiceUsecase
	haptics    service.Haptics
	logger     *slog.Logger

	pending sync.WaitGroup
}

// NewMonitoringService is the constructor for monitoringService.
func NewMonitoringService(
	dispatcher usecase.DispatcherUsecase,
	location usecase.LocationUsecase,
	motion usecase.MotionUsecase,
	voice usecase.VoiceUsecase,
	haptics service.Haptics,
	logger *slog.Logger,
) usecase.MonitoringUsecase {
	return &monitoringService{
		dispatcher: dispatcher,
		location:   location,
		motion:     motion,
		voice:      voice,
		haptics:    haptics,
		logger:     logger,
	}
}

// Toggle arms or disarms every sentry. Sensor failures are logged and never block the switch.
func (srv *monitoringService) Toggle(ctx context.Context) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.armed = !srv.armed

	if srv.armed {
		srv.dispatcher.SetMonitoring(ctx, true)

		if err := srv.location.StartWatch(ctx); err != nil {
			logger.Warn("Failed to start location watch", slog.Any("error", err))
		}
		if err := srv.motion.Start(ctx); err != nil {
			logger.Warn("Failed to start motion sentry", slog.Any("error", err))
		}

		bg := context.WithoutCancel(ctx)
		srv.pending.Add(1)
		go func() {
			defer srv.pending.Done()

			if _, err := srv.location.Refresh(bg); err != nil {
				logger.Debug("Initial location refresh failed", slog.Any("error", err))
			}
		}()

		logger.Info("Monitoring armed")
	} else {
		srv.disarmLocked(ctx)
		logger.Info("Monitoring disarmed")
	}

	if err := srv.haptics.Vibrate(ctx, toggleVibration); err != nil {
		logger.Debug("Toggle vibration skipped", slog.Any("error", err))
	}

	return srv.armed, nil
}

func (srv *monitoringService) disarmLocked(ctx context.Context) {
	srv.armed = false
	srv.dispatcher.SetMonitoring(ctx, false)
	srv.location.StopWatch()
	srv.motion.Stop()
	srv.voice.Stop()
}

func (srv *monitoringService) Armed() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.armed
}

// Teardown releases every acquisition and returns to SECURE.
func (srv *monitoringService) Teardown(ctx context.Context) {
	srv.mu.Lock()
	srv.disarmLocked(ctx)
	srv.mu.Unlock()

	srv.dispatcher.ResetStatus(ctx)
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Monitoring torn down")
}
