package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// MotionSource wraps the device accelerometer.
type MotionSource interface {
	// Subscribe starts delivering acceleration-including-gravity samples at the device rate.
	Subscribe(ctx context.Context) (Stream[entity.MotionSample], error)
}
