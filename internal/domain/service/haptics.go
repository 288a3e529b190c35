package service

import (
	"context"
	"time"
)

// Haptics requests a vibration pattern on the device. It is best effort.
type Haptics interface {
	// Vibrate alternates vibration and pause durations, starting with vibration.
	Vibrate(ctx context.Context, pattern ...time.Duration) error
}
