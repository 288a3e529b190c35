// Package events fans state changes out to live stream subscribers.
package events

import (
	"log/slog"
	"sync"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
)

const subscriberBuffer = 32

// Hub is an in-process StateBroadcaster. A subscriber that falls behind loses events instead of stalling the publisher.
type Hub struct {
	mu     sync.RWMutex
	subs   map[chan entity.StateEvent]struct{}
	logger *slog.Logger
}

// NewHub creates an empty hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[chan entity.StateEvent]struct{}),
		logger: logger,
	}
}

var _ service.StateBroadcaster = (*Hub)(nil)

func (h *Hub) Broadcast(event entity.StateEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- event:
		default:
			h.logger.Debug("Dropping state event for slow subscriber", slog.String("type", string(event.Type)))
		}
	}
}

func (h *Hub) Subscribe() (<-chan entity.StateEvent, func()) {
	ch := make(chan entity.StateEvent, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Subscribers returns the number of active subscriptions
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}
