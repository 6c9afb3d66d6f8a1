package notify

import (
	"sync"
	"sync/atomic"
)

// Observer is one live viewer. Events are queued on a bounded channel; a
// viewer that falls behind loses events rather than stalling publishers.
type Observer struct {
	id     uint64
	hub    *Hub
	events chan Event

	mu     sync.Mutex
	closed bool

	dropped atomic.Uint64
}

func (o *Observer) Events() <-chan Event {
	return o.events
}

// Subscribe adds the observer to the date's group. Subscribing twice is a no-op.
func (o *Observer) Subscribe(date string) {
	o.hub.join(o, RoomFor(date))
}

func (o *Observer) Unsubscribe(date string) {
	o.hub.leave(o, RoomFor(date))
}

// Close detaches the observer and closes its channel. Safe to call more than once.
func (o *Observer) Close() {
	o.hub.disconnect(o)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	close(o.events)
}

// Dropped is the number of events discarded because the queue was full.
func (o *Observer) Dropped() uint64 {
	return o.dropped.Load()
}

func (o *Observer) deliver(e Event) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return false
	}
	select {
	case o.events <- e:
		return true
	default:
		o.dropped.Add(1)
		return false
	}
}
