package impl

import (
	"context"
	"log/slog"
	"sync"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultFallThreshold    = 38.0
	defaultMotionWindowSize = 40
)

// MotionParams holds the dependencies of the motion sentry, injected by Fx.
type MotionParams struct {
	fx.In

	Config      *config.Config
	Source      service.MotionSource
	Dispatcher  usecase.DispatcherUsecase
	Broadcaster service.StateBroadcaster
	Logger      *slog.Logger
}

// motionSentry implements the MotionUsecase interface.
type motionSentry struct {
	mu     sync.Mutex
	window []entity.MotionReading
	stream service.Stream[entity.MotionSample]

	source      service.MotionSource
	dispatcher  usecase.DispatcherUsecase
	broadcaster service.StateBroadcaster
	logger      *slog.Logger

	threshold  float64
	windowSize int
}

// NewMotionSentry is the constructor for motionSentry.
func NewMotionSentry(params MotionParams) usecase.MotionUsecase {
	srv := &motionSentry{
		source:      params.Source,
		dispatcher:  params.Dispatcher,
		broadcaster: params.Broadcaster,
		logger:      params.Logger,
		threshold:   defaultFallThreshold,
		windowSize:  defaultMotionWindowSize,
	}

	if cfg := params.Config.Motion; cfg != nil {
		if cfg.Threshold > 0 {
			srv.threshold = cfg.Threshold
		}
		if cfg.WindowSize > 0 {
			srv.windowSize = cfg.WindowSize
		}
	}

	return srv
}

// Start subscribes to the motion source. It is a no-op while already subscribed.
func (srv *motionSentry) Start(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.stream != nil {
		return nil
	}

	stream, err := srv.source.Subscribe(context.WithoutCancel(ctx))
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to motion")
	}
	srv.stream = stream

	go srv.consume(context.WithoutCancel(ctx), stream)

	srv.logger.Info("Motion sentry started", slog.Float64("threshold", srv.threshold))

	return nil
}

func (srv *motionSentry) consume(ctx context.Context, stream service.Stream[entity.MotionSample]) {
	// Samples still buffered after Stop are drained and dropped.
	for sample := range stream.C() {
		srv.ingest(ctx, sample, stream)
	}

	srv.mu.Lock()
	if srv.stream == stream {
		srv.stream = nil
	}
	srv.mu.Unlock()
}

// Stop unsubscribes and clears the display window.
func (srv *motionSentry) Stop() {
	srv.mu.Lock()
	stream := srv.stream
	srv.stream = nil
	srv.window = nil
	srv.mu.Unlock()

	if stream == nil {
		return
	}

	_ = stream.Close()
	srv.logger.Info("Motion sentry stopped")
}

// Ingest records the sample and asks the dispatcher for a FALL alert when it exceeds the threshold.
func (srv *motionSentry) Ingest(ctx context.Context, sample entity.MotionSample) bool {
	return srv.ingest(ctx, sample, nil)
}

// ingest ignores the sample when from is set and is no longer the active subscription.
func (srv *motionSentry) ingest(ctx context.Context, sample entity.MotionSample, from service.Stream[entity.MotionSample]) bool {
	reading := entity.MotionReading{Time: sample.Timestamp, Magnitude: sample.Magnitude()}

	srv.mu.Lock()
	if from != nil && srv.stream != from {
		srv.mu.Unlock()

		return false
	}
	srv.window = append(srv.window, reading)
	if overflow := len(srv.window) - srv.windowSize; overflow > 0 {
		srv.window = append([]entity.MotionReading(nil), srv.window[overflow:]...)
	}
	srv.mu.Unlock()

	srv.broadcaster.Broadcast(entity.StateEvent{Type: entity.StateEventMotion, Payload: reading})

	if reading.Magnitude <= srv.threshold {
		return false
	}

	srv.logger.Warn("Fall detected", slog.Float64("magnitude", reading.Magnitude))
	srv.dispatcher.TriggerSOS(ctx, entity.AlertTypeFall)

	return true
}

// Window returns a copy of the display window, oldest first.
func (srv *motionSentry) Window() []entity.MotionReading {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	window := make([]entity.MotionReading, len(srv.window))
	copy(window, srv.window)

	return window
}

func (srv *motionSentry) Active() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.stream != nil
}
