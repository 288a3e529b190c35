package service

import "guardian/internal/domain/entity"

// StateBroadcaster fans state changes out to live subscribers.
type StateBroadcaster interface {
	// Broadcast delivers the event to every subscriber without blocking.
	Broadcast(event entity.StateEvent)

	// Subscribe returns a feed of events and a function that ends the subscription.
	Subscribe() (<-chan entity.StateEvent, func())
}
