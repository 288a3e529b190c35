package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// User-facing location errors.
const (
	msgLocationUnsupported    = "Geolocation is not supported by your browser."
	msgLocationDenied         = "Location access denied. Please enable it in browser settings."
	msgLocationNoSignal       = "Unable to retrieve location. Check GPS signal."
	msgLocationUnavailable    = "Location unavailable."
	msgLocationWatchDenied    = "Location access denied."
	defaultHighAccuracyWindow = 10 * time.Second
	defaultFallbackWindow     = 5 * time.Second
	defaultWatchTimeout       = 15 * time.Second
	defaultWatchMaximumAge    = time.Second
)

// LocationParams holds the dependencies of the location tracker, injected by Fx.
type LocationParams struct {
	fx.In

	Config      *config.Config
	Provider    service.LocationProvider `optional:"true"`
	Broadcaster service.StateBroadcaster
	Logger      *slog.Logger
}

type locationWatch struct {
	stream service.Stream[service.PositionUpdate]
	cancel context.CancelFunc
}

// locationTracker implements the LocationUsecase interface.
type locationTracker struct {
	mu         sync.Mutex
	fix        *entity.LocationFix
	isLocating bool
	lastError  string
	watch      *locationWatch

	provider    service.LocationProvider
	broadcaster service.StateBroadcaster
	logger      *slog.Logger

	highAccuracyTimeout time.Duration
	fallbackTimeout     time.Duration
	watchTimeout        time.Duration
	watchMaximumAge     time.Duration
}

// NewLocationTracker is the constructor for locationTracker.
func NewLocationTracker(params LocationParams) usecase.LocationUsecase {
	srv := &locationTracker{
		provider:            params.Provider,
		broadcaster:         params.Broadcaster,
		logger:              params.Logger,
		highAccuracyTimeout: defaultHighAccuracyWindow,
		fallbackTimeout:     defaultFallbackWindow,
		watchTimeout:        defaultWatchTimeout,
		watchMaximumAge:     defaultWatchMaximumAge,
	}

	if cfg := params.Config.Location; cfg != nil {
		if cfg.HighAccuracyTimeout > 0 {
			srv.highAccuracyTimeout = cfg.HighAccuracyTimeout
		}
		if cfg.FallbackTimeout > 0 {
			srv.fallbackTimeout = cfg.FallbackTimeout
		}
		if cfg.WatchTimeout > 0 {
			srv.watchTimeout = cfg.WatchTimeout
		}
		if cfg.WatchMaximumAge > 0 {
			srv.watchMaximumAge = cfg.WatchMaximumAge
		}
	}

	return srv
}

func locationError(message string) error {
	return domainerrors.NewBaseError(
		domainerrors.ErrLocationFailed.HTTPCode(),
		domainerrors.ErrLocationFailed.ErrorCode(),
		message,
		"",
	)
}

// Refresh requests a one-shot high-accuracy fix, retrying once at low accuracy on timeout.
func (srv *locationTracker) Refresh(ctx context.Context) (*entity.LocationFix, error) {
	if srv.provider == nil {
		srv.update(func() { srv.lastError = msgLocationUnsupported })

		return nil, locationError(msgLocationUnsupported)
	}

	srv.update(func() {
		srv.isLocating = true
		srv.lastError = ""
	})
	defer srv.update(func() { srv.isLocating = false })

	fix, err := srv.provider.CurrentPosition(ctx, service.PositionOptions{
		HighAccuracy: true,
		Timeout:      srv.highAccuracyTimeout,
		MaximumAge:   0,
	})
	if errors.Is(err, service.ErrLocationTimeout) {
		srv.logger.Info("High accuracy fix timed out, retrying at low accuracy")

		fix, err = srv.provider.CurrentPosition(ctx, service.PositionOptions{
			HighAccuracy: false,
			Timeout:      srv.fallbackTimeout,
			MaximumAge:   0,
		})
		if err != nil {
			return nil, srv.fail(msgLocationNoSignal, err)
		}
	}
	if err != nil {
		if errors.Is(err, service.ErrLocationPermissionDenied) {
			return nil, srv.fail(msgLocationDenied, err)
		}

		return nil, srv.fail(msgLocationUnavailable, err)
	}

	srv.update(func() {
		srv.fix = fix.Clone()
		srv.lastError = ""
	})

	return fix.Clone(), nil
}

func (srv *locationTracker) fail(message string, cause error) error {
	srv.logger.Warn("Location request failed", slog.String("message", message), slog.Any("error", cause))
	srv.update(func() { srv.lastError = message })

	return locationError(message)
}

// StartWatch subscribes to continuous updates. It is a no-op while a watch is active.
func (srv *locationTracker) StartWatch(ctx context.Context) error {
	if srv.provider == nil {
		srv.update(func() { srv.lastError = msgLocationUnsupported })

		return locationError(msgLocationUnsupported)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.watch != nil {
		return nil
	}

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stream, err := srv.provider.Watch(watchCtx, service.PositionOptions{
		HighAccuracy: true,
		Timeout:      srv.watchTimeout,
		MaximumAge:   srv.watchMaximumAge,
	})
	if err != nil {
		cancel()

		return errors.Wrap(err, "failed to start location watch")
	}

	w := &locationWatch{stream: stream, cancel: cancel}
	srv.watch = w
	go srv.consume(w)

	srv.logger.Info("Location watch started")

	return nil
}

func (srv *locationTracker) consume(w *locationWatch) {
	defer srv.endWatch(w)

	for update := range w.stream.C() {
		if update.Err != nil {
			if errors.Is(update.Err, service.ErrLocationPermissionDenied) {
				srv.logger.Warn("Location watch lost permission")
				srv.update(func() { srv.lastError = msgLocationWatchDenied })

				return
			}

			srv.logger.Debug("Ignoring location watch error", slog.Any("error", update.Err))

			continue
		}

		srv.update(func() {
			srv.fix = update.Fix.Clone()
			srv.lastError = ""
		})
	}
}

// endWatch releases w, unless it has already been replaced.
func (srv *locationTracker) endWatch(w *locationWatch) {
	srv.mu.Lock()
	if srv.watch == w {
		srv.watch = nil
	}
	srv.mu.Unlock()

	w.cancel()
	_ = w.stream.Close()
	srv.broadcast()
}

// StopWatch cancels the active watch, if any.
func (srv *locationTracker) StopWatch() {
	srv.mu.Lock()
	w := srv.watch
	srv.watch = nil
	srv.mu.Unlock()

	if w == nil {
		return
	}

	w.cancel()
	_ = w.stream.Close()
	srv.logger.Info("Location watch stopped")
}

func (srv *locationTracker) LastFix() *entity.LocationFix {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.fix.Clone()
}

func (srv *locationTracker) Snapshot() entity.LocationSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshotLocked()
}

func (srv *locationTracker) snapshotLocked() entity.LocationSnapshot {
	return entity.LocationSnapshot{
		Fix:        srv.fix.Clone(),
		IsLocating: srv.isLocating,
		Error:      srv.lastError,
		Watching:   srv.watch != nil,
	}
}

// update applies fn under the lock and publishes the resulting snapshot.
func (srv *locationTracker) update(fn func()) {
	srv.mu.Lock()
	fn()
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.broadcaster.Broadcast(entity.StateEvent{Type: entity.StateEventLocation, Payload: snapshot})
}

func (srv *locationTracker) broadcast() {
	srv.broadcaster.Broadcast(entity.StateEvent{Type: entity.StateEventLocation, Payload: srv.Snapshot()})
}
