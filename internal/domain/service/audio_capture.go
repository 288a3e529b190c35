package service

import "context"

// AudioCapture wraps the device microphone.
type AudioCapture interface {
	// Open starts mono capture at sampleRate and delivers frames of frameSize samples in [-1, 1].
	Open(ctx context.Context, sampleRate, frameSize int) (Stream[[]float32], error)
}
