package device

import "sync"

// subscription is a channel-backed service.Stream.
// Delivery never blocks: a reading that finds the buffer full is dropped.
type subscription[T any] struct {
	id      string
	ch      chan T
	once    sync.Once
	mu      sync.Mutex
	closed  bool
	onClose func(id string)
}

func newSubscription[T any](id string, buffer int, onClose func(id string)) *subscription[T] {
	return &subscription[T]{
		id:      id,
		ch:      make(chan T, buffer),
		onClose: onClose,
	}
}

func (s *subscription[T]) C() <-chan T {
	return s.ch
}

// Close unregisters the subscription and closes its channel.
func (s *subscription[T]) Close() error {
	s.once.Do(func() {
		if s.onClose != nil {
			s.onClose(s.id)
		}
		s.end()
	})

	return nil
}

// end closes the channel without notifying the owner.
func (s *subscription[T]) end() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// deliver reports whether the value was queued.
func (s *subscription[T]) deliver(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
