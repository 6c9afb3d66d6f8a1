package notify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const relayTimeout = 5 * time.Second

// Relay forwards change events to an external system.
type Relay interface {
	Name() string
	Forward(ctx context.Context, e Event) error
	Close() error
}

// relayDispatcher decouples publishers from relay latency: events are queued
// and forwarded by one goroutine, preserving publish order.
type relayDispatcher struct {
	relays []Relay
	queue  chan Event
	done   chan struct{}
	logger *slog.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	mu        sync.RWMutex
	stopped   bool

	dropped atomic.Uint64
}

func newRelayDispatcher(queueSize int, relays []Relay, logger *slog.Logger) *relayDispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	return &relayDispatcher{
		relays: relays,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (d *relayDispatcher) start() {
	d.startOnce.Do(func() {
		go d.run()
	})
}

func (d *relayDispatcher) enqueue(e Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return
	}
	select {
	case d.queue <- e:
	default:
		d.dropped.Add(1)
		d.logger.Warn("relay queue full, event dropped", "type", string(e.Type))
	}
}

func (d *relayDispatcher) run() {
	defer close(d.done)
	for e := range d.queue {
		for _, r := range d.relays {
			ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
			if err := r.Forward(ctx, e); err != nil {
				d.logger.Error("relay forward failed",
					"relay", r.Name(),
					"type", string(e.Type),
					"error", err.Error())
			}
			cancel()
		}
	}
}

// stop closes the queue and waits for it to drain. Relays are closed only
// after the forwarding goroutine has exited; on timeout that happens in the
// background.
func (d *relayDispatcher) stop(ctx context.Context) error {
	var err error
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()

		d.startOnce.Do(func() {
			close(d.done)
		})
		select {
		case <-d.done:
			d.closeRelays()
		case <-ctx.Done():
			err = ctx.Err()
			d.logger.Warn("relay queue not drained before shutdown", "pending", len(d.queue))
			go func() {
				<-d.done
				d.closeRelays()
			}()
		}
	})
	return err
}

func (d *relayDispatcher) closeRelays() {
	for _, r := range d.relays {
		if cerr := r.Close(); cerr != nil {
			d.logger.Warn("relay close failed", "relay", r.Name(), "error", cerr.Error())
		}
	}
}
