package service

import (
	"context"
	"errors"
)

// ErrSendQueueFull is returned when an audio chunk cannot be queued without blocking.
var ErrSendQueueFull = errors.New("live session send queue full")

// ErrSessionClosed is returned when sending on a closed session.
var ErrSessionClosed = errors.New("live session closed")

// LiveSessionConfig describes the remote conversational session to open.
type LiveSessionConfig struct {
	Model                   string
	SystemInstruction       string
	ResponseModalities      []string
	InputAudioTranscription bool
}

// AudioChunk is one encoded frame of realtime input.
type AudioChunk struct {
	Data     string // Base64 of little-endian PCM16 samples.
	MimeType string // e.g. "audio/pcm;rate=16000".
}

// LiveMessage is the part of a server message the sentry cares about.
type LiveMessage struct {
	InputTranscription string
	ModelText          string
	TurnComplete       bool
}

// LiveSession is an open bidirectional audio session.
type LiveSession interface {
	// SendAudio queues a chunk and returns without waiting for the network.
	SendAudio(chunk AudioChunk) error

	// Messages is closed when the session ends; Err then reports why.
	Messages() <-chan LiveMessage

	// Err returns the error that ended the session, or nil after a clean Close.
	Err() error

	// Close ends the session. It is safe to call more than once.
	Close() error
}

// LiveSessionDialer opens live sessions.
type LiveSessionDialer interface {
	Dial(ctx context.Context, cfg LiveSessionConfig) (LiveSession, error)
}
