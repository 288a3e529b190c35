package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"guardian/internal/domain/service"
	mockSvc "guardian/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStream is a test Stream. Send and Close must not race.
type fakeStream[T any] struct {
	ch     chan T
	once   sync.Once
	closed chan struct{}
}

func newFakeStream[T any](buffer int) *fakeStream[T] {
	return &fakeStream[T]{ch: make(chan T, buffer), closed: make(chan struct{})}
}

func (s *fakeStream[T]) C() <-chan T {
	return s.ch
}

func (s *fakeStream[T]) Close() error {
	s.once.Do(func() {
		close(s.closed)
		close(s.ch)
	})

	return nil
}

func (s *fakeStream[T]) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// fakeLiveSession records sent chunks and lets the test push server messages.
type fakeLiveSession struct {
	mu       sync.Mutex
	sent     []service.AudioChunk
	closed   bool
	err      error
	messages chan service.LiveMessage
	once     sync.Once
}

func newFakeLiveSession() *fakeLiveSession {
	return &fakeLiveSession{messages: make(chan service.LiveMessage, 8)}
}

func (s *fakeLiveSession) SendAudio(chunk service.AudioChunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return service.ErrSessionClosed
	}
	s.sent = append(s.sent, chunk)

	return nil
}

func (s *fakeLiveSession) Messages() <-chan service.LiveMessage {
	return s.messages
}

func (s *fakeLiveSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *fakeLiveSession) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.messages)
	})

	return nil
}

// drop ends the session from the server side.
func (s *fakeLiveSession) drop(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.err = err
		s.mu.Unlock()
		close(s.messages)
	})
}

func (s *fakeLiveSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func (s *fakeLiveSession) sentChunks() []service.AudioChunk {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]service.AudioChunk(nil), s.sent...)
}

// quietBroadcaster accepts any number of broadcasts.
func quietBroadcaster(t *testing.T) *mockSvc.MockStateBroadcaster {
	broadcaster := mockSvc.NewMockStateBroadcaster(t)
	broadcaster.EXPECT().Broadcast(mock.Anything).Maybe()

	return broadcaster
}

func durationsAsArgs(pattern []time.Duration) []interface{} {
	args := make([]interface{}, len(pattern))
	for i, d := range pattern {
		args[i] = d
	}

	return args
}

func eventually(t *testing.T, condition func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
