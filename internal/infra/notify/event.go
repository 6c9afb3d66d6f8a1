package notify

import (
	"time"
)

type EventType string

const (
	EventAvailabilityChanged EventType = "availability:changed"
	EventLockExpired         EventType = "lock:expired"
)

const roomPrefix = "availability:"

// Event is what observers and relays receive. Availability events carry the
// slot coordinates; lock-expired events carry the session only.
type Event struct {
	Type      EventType `json:"type"`
	Date      string    `json:"date,omitempty"`
	TimeSlot  string    `json:"timeSlot,omitempty"`
	RegionID  string    `json:"regionId,omitempty"`
	SessionID string    `json:"sessionId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Room names the group an availability event is delivered to. Lock-expired
// events are broadcast and have no room.
func (e Event) Room() string {
	if e.Type != EventAvailabilityChanged {
		return ""
	}
	return RoomFor(e.Date)
}

func RoomFor(date string) string {
	return roomPrefix + date
}
