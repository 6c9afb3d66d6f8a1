//go:build unit

package notify_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/infra/notify"
	"venue-reservation/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testNow    = time.Date(2025, 7, 24, 18, 0, 0, 0, time.UTC)
)

func slotKey(t *testing.T, date, slot string) reservation.SlotKey {
	t.Helper()
	d, err := timegrid.ParseDate(date)
	require.NoError(t, err)
	return reservation.SlotKey{Date: d, Slot: timegrid.Slot(slot), RegionID: uuid.New()}
}

func receive(t *testing.T, o *notify.Observer) notify.Event {
	t.Helper()
	select {
	case e, ok := <-o.Events():
		require.True(t, ok, "observer channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return notify.Event{}
	}
}

func assertNoEvent(t *testing.T, o *notify.Observer) {
	t.Helper()
	select {
	case e := <-o.Events():
		t.Fatalf("unexpected event %+v", e)
	default:
	}
}

func TestHub_RoomDelivery(t *testing.T) {
	hub := notify.NewHub(8, clock.NewMockClock(testNow), testLogger)

	viewer := hub.Connect()
	viewer.Subscribe("2025-07-25")
	other := hub.Connect()
	other.Subscribe("2025-07-26")
	idle := hub.Connect()

	key := slotKey(t, "2025-07-25", "19:00")
	hub.AvailabilityChanged(context.Background(), key)

	e := receive(t, viewer)
	assert.Equal(t, notify.EventAvailabilityChanged, e.Type)
	assert.Equal(t, "2025-07-25", e.Date)
	assert.Equal(t, "19:00", e.TimeSlot)
	assert.Equal(t, key.RegionID.String(), e.RegionID)
	assert.Equal(t, testNow, e.Timestamp)

	assertNoEvent(t, other)
	assertNoEvent(t, idle)
}

func TestHub_LockExpiredIsBroadcast(t *testing.T) {
	hub := notify.NewHub(8, clock.NewMockClock(testNow), testLogger)

	a := hub.Connect()
	a.Subscribe("2025-07-25")
	b := hub.Connect()

	hub.LockExpired(context.Background(), "session-1")

	for _, o := range []*notify.Observer{a, b} {
		e := receive(t, o)
		assert.Equal(t, notify.EventLockExpired, e.Type)
		assert.Equal(t, "session-1", e.SessionID)
		assert.Empty(t, e.Date)
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := notify.NewHub(8, clock.NewMockClock(testNow), testLogger)

	o := hub.Connect()
	o.Subscribe("2025-07-25")
	o.Subscribe("2025-07-25")
	o.Unsubscribe("2025-07-25")

	hub.AvailabilityChanged(context.Background(), slotKey(t, "2025-07-25", "19:00"))
	assertNoEvent(t, o)

	_, inRoom := hub.ObserverCount(notify.RoomFor("2025-07-25"))
	assert.Zero(t, inRoom)
}

func TestHub_OrderPerDate(t *testing.T) {
	hub := notify.NewHub(64, clock.NewMockClock(testNow), testLogger)
	o := hub.Connect()
	o.Subscribe("2025-07-25")

	slots := []string{"18:00", "18:30", "19:00", "19:30", "20:00"}
	for _, s := range slots {
		hub.AvailabilityChanged(context.Background(), slotKey(t, "2025-07-25", s))
	}

	for _, s := range slots {
		assert.Equal(t, s, receive(t, o).TimeSlot)
	}
}

func TestHub_SlowObserverDoesNotBlock(t *testing.T) {
	hub := notify.NewHub(2, clock.NewMockClock(testNow), testLogger)
	slow := hub.Connect()
	slow.Subscribe("2025-07-25")
	fast := hub.Connect()
	fast.Subscribe("2025-07-25")
	key := slotKey(t, "2025-07-25", "19:00")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			hub.AvailabilityChanged(context.Background(), key)
			<-fast.Events()
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full observer queue")
	}
	assert.Equal(t, uint64(3), slow.Dropped())
	assert.Equal(t, uint64(5), hub.Published())
}

func TestHub_ConcurrentChurn(t *testing.T) {
	hub := notify.NewHub(4, clock.NewMockClock(testNow), testLogger)
	key := slotKey(t, "2025-07-25", "19:00")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			o := hub.Connect()
			o.Subscribe("2025-07-25")
			o.Close()
			o.Close()
		}()
		go func() {
			defer wg.Done()
			hub.AvailabilityChanged(context.Background(), key)
		}()
	}
	wg.Wait()

	connected, inRoom := hub.ObserverCount(notify.RoomFor("2025-07-25"))
	assert.Zero(t, connected)
	assert.Zero(t, inRoom)
}

func TestHub_CloseClosesObservers(t *testing.T) {
	hub := notify.NewHub(4, clock.NewMockClock(testNow), testLogger)
	o := hub.Connect()

	require.NoError(t, hub.Close(context.Background()))

	_, ok := <-o.Events()
	assert.False(t, ok)
	// subscribing after close is ignored
	o.Subscribe("2025-07-25")
	_, inRoom := hub.ObserverCount(notify.RoomFor("2025-07-25"))
	assert.Zero(t, inRoom)
}

type recordingRelay struct {
	mu     sync.Mutex
	events []notify.Event
	closed bool
}

func (r *recordingRelay) Name() string { return "recording" }

func (r *recordingRelay) Forward(_ context.Context, e notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingRelay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func TestHub_Relays(t *testing.T) {
	relay := &recordingRelay{}
	hub := notify.NewHub(4, clock.NewMockClock(testNow), testLogger, notify.WithRelays(16, relay))
	hub.Start()

	hub.AvailabilityChanged(context.Background(), slotKey(t, "2025-07-25", "19:00"))
	hub.LockExpired(context.Background(), "session-1")

	require.NoError(t, hub.Close(context.Background()))

	relay.mu.Lock()
	defer relay.mu.Unlock()
	require.Len(t, relay.events, 2)
	assert.Equal(t, notify.EventAvailabilityChanged, relay.events[0].Type)
	assert.Equal(t, notify.EventLockExpired, relay.events[1].Type)
	assert.True(t, relay.closed)
}

// stallingRelay blocks in Forward until released.
type stallingRelay struct {
	entered  chan struct{}
	release  chan struct{}
	mu       sync.Mutex
	inFlight bool
	closed   bool
	racy     bool
}

func (r *stallingRelay) Name() string { return "stalling" }

func (r *stallingRelay) Forward(_ context.Context, _ notify.Event) error {
	r.mu.Lock()
	r.inFlight = true
	r.mu.Unlock()
	close(r.entered)
	<-r.release
	r.mu.Lock()
	r.inFlight = false
	r.mu.Unlock()
	return nil
}

func (r *stallingRelay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight {
		r.racy = true
	}
	r.closed = true
	return nil
}

func (r *stallingRelay) state() (closed, racy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed, r.racy
}

func TestHub_CloseTimeoutWaitsForForward(t *testing.T) {
	relay := &stallingRelay{entered: make(chan struct{}), release: make(chan struct{})}
	hub := notify.NewHub(4, clock.NewMockClock(testNow), testLogger, notify.WithRelays(4, relay))
	hub.Start()

	hub.LockExpired(context.Background(), "session-1")
	<-relay.entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, hub.Close(ctx), context.DeadlineExceeded)

	closed, _ := relay.state()
	assert.False(t, closed, "relay closed while a forward was in flight")

	close(relay.release)
	require.Eventually(t, func() bool {
		closed, _ := relay.state()
		return closed
	}, time.Second, 5*time.Millisecond)

	_, racy := relay.state()
	assert.False(t, racy)
}

func TestRedisRelay_Channel(t *testing.T) {
	r := notify.NewRedisRelay(nil, "reservations")

	assert.Equal(t, "reservations:availability:2025-07-25",
		r.Channel(notify.Event{Type: notify.EventAvailabilityChanged, Date: "2025-07-25"}))
	assert.Equal(t, "reservations:broadcast",
		r.Channel(notify.Event{Type: notify.EventLockExpired, SessionID: "s"}))
}
