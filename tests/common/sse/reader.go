//go:build unit || e2e

package sse

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type Event struct {
	Name string
	Data string
}

// Decode unmarshals the event's JSON data into target.
func (e Event) Decode(t *testing.T, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(e.Data), target), "event data: %s", e.Data)
}

// Reader parses a text/event-stream body in the background.
type Reader struct {
	events chan Event
}

func NewReader(body io.Reader) *Reader {
	r := &Reader{events: make(chan Event, 64)}
	go r.run(body)
	return r
}

func (r *Reader) run(body io.Reader) {
	defer close(r.events)

	scanner := bufio.NewScanner(body)
	var cur Event
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if cur.Name != "" || cur.Data != "" {
				r.events <- cur
			}
			cur = Event{}
		case strings.HasPrefix(line, "event:"):
			cur.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			cur.Data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
}

// Next returns the next event, skipping heartbeats, or fails the test after timeout.
func (r *Reader) Next(t *testing.T, timeout time.Duration) Event {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case e, ok := <-r.events:
			require.True(t, ok, "event stream closed")
			if e.Name == "heartbeat" {
				continue
			}
			return e
		case <-deadline:
			require.FailNow(t, "timed out waiting for event")
			return Event{}
		}
	}
}

// NextNamed returns the next event called name, discarding any others.
func (r *Reader) NextNamed(t *testing.T, name string, timeout time.Duration) Event {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case e, ok := <-r.events:
			require.True(t, ok, "event stream closed")
			if e.Name == name {
				return e
			}
		case <-deadline:
			require.FailNowf(t, "timed out waiting for event", "event %q", name)
			return Event{}
		}
	}
}
