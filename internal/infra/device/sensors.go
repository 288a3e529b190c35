package device

import (
	"context"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	_ service.LocationProvider = (*Bridge)(nil)
	_ service.MotionSource     = (*Bridge)(nil)
	_ service.AudioCapture     = (*Bridge)(nil)
	_ service.Haptics          = (*Bridge)(nil)
	_ service.Dialer           = (*Bridge)(nil)
)

// CurrentPosition asks the phone for a single fix.
func (b *Bridge) CurrentPosition(ctx context.Context, opts service.PositionOptions) (*entity.LocationFix, error) {
	requestID := uuid.NewString()
	ch := make(chan positionResult, 1)

	b.mu.Lock()
	p := b.active
	if p == nil {
		b.mu.Unlock()

		return nil, service.ErrLocationUnavailable
	}
	b.pending[requestID] = &pendingRequest{peer: p, ch: ch}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, requestID)
		b.mu.Unlock()
	}()

	if !b.sendTo(p, positionCommand(msgLocate, requestID, "", opts)) {
		return nil, service.ErrLocationUnavailable
	}

	var timeout <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case res := <-ch:
		return res.fix, res.err
	case <-timeout:
		return nil, service.ErrLocationTimeout
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, service.ErrLocationTimeout
		}

		return nil, ctx.Err()
	}
}

// Watch starts continuous position updates. The watch survives reconnects until it is closed.
func (b *Bridge) Watch(_ context.Context, opts service.PositionOptions) (service.Stream[service.PositionUpdate], error) {
	id := uuid.NewString()
	sub := newSubscription[service.PositionUpdate](id, watchBufferSize, func(id string) {
		b.mu.Lock()
		delete(b.watches, id)
		b.mu.Unlock()

		b.broadcast(command{Type: msgWatchStop, ID: id})
	})

	b.mu.Lock()
	b.watches[id] = &watch{sub: sub, opts: opts}
	b.mu.Unlock()

	b.broadcast(positionCommand(msgWatchStart, "", id, opts))

	return sub, nil
}

// Subscribe starts acceleration samples.
func (b *Bridge) Subscribe(_ context.Context) (service.Stream[entity.MotionSample], error) {
	id := uuid.NewString()
	sub := newSubscription[entity.MotionSample](id, motionBufferSize, func(id string) {
		b.mu.Lock()
		delete(b.motions, id)
		b.mu.Unlock()

		b.broadcast(command{Type: msgMotionStop, ID: id})
	})

	b.mu.Lock()
	b.motions[id] = sub
	b.mu.Unlock()

	b.broadcast(command{Type: msgMotionStart, ID: id})

	return sub, nil
}

// Open starts microphone capture. Frames arrive as binary websocket messages.
func (b *Bridge) Open(_ context.Context, sampleRate, frameSize int) (service.Stream[[]float32], error) {
	if sampleRate <= 0 || frameSize <= 0 {
		return nil, errors.Errorf("invalid capture format: rate=%d frame=%d", sampleRate, frameSize)
	}

	id := uuid.NewString()
	sub := newSubscription[[]float32](id, audioBufferSize, func(id string) {
		b.mu.Lock()
		delete(b.audios, id)
		b.mu.Unlock()

		b.broadcast(command{Type: msgAudioStop, ID: id})
	})

	b.mu.Lock()
	b.audios[id] = &audioTap{sub: sub, sampleRate: sampleRate, frameSize: frameSize}
	b.mu.Unlock()

	b.broadcast(command{Type: msgAudioStart, ID: id, SampleRate: sampleRate, FrameSize: frameSize})

	return sub, nil
}

// Vibrate plays the pattern on the phone. It fails only when no phone is attached.
func (b *Bridge) Vibrate(_ context.Context, pattern ...time.Duration) error {
	if !b.broadcast(command{Type: msgVibrate, Pattern: patternMillis(pattern)}) {
		return domainerrors.ErrDeviceNotConnected
	}

	return nil
}

// Dial asks the phone to open its dialer with number.
func (b *Bridge) Dial(_ context.Context, number string) error {
	if !b.broadcast(command{Type: msgDial, Number: number}) {
		return domainerrors.ErrDeviceNotConnected
	}

	return nil
}
