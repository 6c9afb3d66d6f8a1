package reservation

import (
	"venue-reservation/internal/domain/timegrid"

	"github.com/google/uuid"
)

type Status string

const (
	StatusHeld      Status = "HELD"
	StatusConfirmed Status = "CONFIRMED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHeld, StatusConfirmed:
		return true
	default:
		return false
	}
}

// SlotKey identifies the (date, start time, region) cell a reservation
// occupies. Change notifications are keyed by it.
type SlotKey struct {
	Date     timegrid.Date
	Slot     timegrid.Slot
	RegionID uuid.UUID
}
