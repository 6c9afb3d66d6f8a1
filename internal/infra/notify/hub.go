package notify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/usecase/shared"
)

// Hub fans change events out to observers grouped by date, and to relays.
// Publishes are serialised, so every observer sees the events of one date in
// the order they were published.
type Hub struct {
	mu        sync.RWMutex
	observers map[uint64]*Observer
	rooms     map[string]map[uint64]*Observer
	nextID    uint64

	publishMu sync.Mutex
	queueSize int
	relay     *relayDispatcher
	clock     clock.Clock
	logger    *slog.Logger

	published atomic.Uint64
}

var _ shared.ChangeNotifier = (*Hub)(nil)

type HubOption func(*Hub)

// WithRelays forwards every published event to relays through a queue of
// queueSize events.
func WithRelays(queueSize int, relays ...Relay) HubOption {
	return func(h *Hub) {
		if len(relays) == 0 {
			return
		}
		h.relay = newRelayDispatcher(queueSize, relays, h.logger)
	}
}

func NewHub(observerQueue int, clock clock.Clock, logger *slog.Logger, opts ...HubOption) *Hub {
	if observerQueue < 1 {
		observerQueue = 1
	}
	h := &Hub{
		observers: map[uint64]*Observer{},
		rooms:     map[string]map[uint64]*Observer{},
		queueSize: observerQueue,
		clock:     clock,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start launches relay forwarding, if any relays are configured.
func (h *Hub) Start() {
	if h.relay != nil {
		h.relay.start()
	}
}

// Close disconnects every observer and drains the relays.
func (h *Hub) Close(ctx context.Context) error {
	h.mu.RLock()
	observers := make([]*Observer, 0, len(h.observers))
	for _, o := range h.observers {
		observers = append(observers, o)
	}
	h.mu.RUnlock()

	for _, o := range observers {
		o.Close()
	}
	if h.relay != nil {
		return h.relay.stop(ctx)
	}
	return nil
}

func (h *Hub) Connect() *Observer {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	o := &Observer{
		id:     h.nextID,
		hub:    h,
		events: make(chan Event, h.queueSize),
	}
	h.observers[o.id] = o
	return o
}

// ObserverCount reports connected observers and the members of room.
func (h *Hub) ObserverCount(room string) (connected, inRoom int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers), len(h.rooms[room])
}

func (h *Hub) AvailabilityChanged(_ context.Context, key reservation.SlotKey) {
	h.Publish(Event{
		Type:     EventAvailabilityChanged,
		Date:     key.Date.String(),
		TimeSlot: key.Slot.String(),
		RegionID: key.RegionID.String(),
	})
}

func (h *Hub) LockExpired(_ context.Context, sessionToken string) {
	h.Publish(Event{
		Type:      EventLockExpired,
		SessionID: sessionToken,
	})
}

// Publish stamps e and delivers it. Availability events go to the members
// of the date's room; everything else goes to every observer.
func (h *Hub) Publish(e Event) {
	h.publishMu.Lock()
	defer h.publishMu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = h.clock.Now()
	}

	targets := h.snapshot(e.Room())
	delivered := 0
	for _, o := range targets {
		if o.deliver(e) {
			delivered++
		}
	}
	h.published.Add(1)

	if dropped := len(targets) - delivered; dropped > 0 {
		h.logger.Warn("change event dropped for slow observers",
			"type", string(e.Type),
			"room", e.Room(),
			"dropped", dropped)
	}

	if h.relay != nil {
		h.relay.enqueue(e)
	}
}

// Published is the number of events published so far.
func (h *Hub) Published() uint64 {
	return h.published.Load()
}

// snapshot copies the target set so delivery runs without the registry lock.
func (h *Hub) snapshot(room string) []*Observer {
	h.mu.RLock()
	defer h.mu.RUnlock()

	src := h.observers
	if room != "" {
		src = h.rooms[room]
	}
	out := make([]*Observer, 0, len(src))
	for _, o := range src {
		out = append(out, o)
	}
	return out
}

func (h *Hub) join(o *Observer, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.observers[o.id]; !ok {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = map[uint64]*Observer{}
		h.rooms[room] = members
	}
	members[o.id] = o
}

func (h *Hub) leave(o *Observer, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(o, room)
}

func (h *Hub) leaveLocked(o *Observer, room string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, o.id)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) disconnect(o *Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.observers, o.id)
	for room := range h.rooms {
		h.leaveLocked(o, room)
	}
}
