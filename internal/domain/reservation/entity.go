package reservation

import (
	"errors"
	"strings"
	"time"

	"venue-reservation/internal/domain/timegrid"

	"github.com/google/uuid"
)

var (
	ErrEmptyHoldToken      = errors.New("hold token cannot be empty")
	ErrInvalidHoldDuration = errors.New("hold duration must be positive")
	ErrAlreadyConfirmed    = errors.New("reservation is already confirmed")
	ErrHoldTokenMismatch   = errors.New("hold belongs to another session")
	ErrHoldExpired         = errors.New("hold has expired")
)

// Hold is the payload of a reservation that is reserved but not yet
// confirmed. It lapses at ExpiresAt.
type Hold struct {
	token     string
	expiresAt time.Time
}

func (h Hold) Token() string        { return h.token }
func (h Hold) ExpiresAt() time.Time { return h.expiresAt }

// Reservation occupies one table in a region for the reservation duration
// starting at slot on date. Exactly one of hold and confirmed is set.
type Reservation struct {
	id        uuid.UUID
	date      timegrid.Date
	slot      timegrid.Slot
	regionID  uuid.UUID
	hold      *Hold
	confirmed *Customer
	createdAt time.Time
	updatedAt time.Time
}

func NewHold(date timegrid.Date, slot timegrid.Slot, regionID uuid.UUID, token string, now time.Time, holdFor time.Duration) (*Reservation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyHoldToken
	}
	if holdFor <= 0 {
		return nil, ErrInvalidHoldDuration
	}
	return &Reservation{
		id:        uuid.New(),
		date:      date,
		slot:      slot,
		regionID:  regionID,
		hold:      &Hold{token: token, expiresAt: now.Add(holdFor)},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructHold(
	id uuid.UUID,
	date timegrid.Date,
	slot timegrid.Slot,
	regionID uuid.UUID,
	token string,
	expiresAt time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		date:      date,
		slot:      slot,
		regionID:  regionID,
		hold:      &Hold{token: token, expiresAt: expiresAt},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func ReconstructConfirmed(
	id uuid.UUID,
	date timegrid.Date,
	slot timegrid.Slot,
	regionID uuid.UUID,
	customer Customer,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		date:      date,
		slot:      slot,
		regionID:  regionID,
		confirmed: &customer,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Confirm turns the caller's unexpired hold into a confirmed reservation in
// place. The hold payload is dropped.
func (r *Reservation) Confirm(token string, customer Customer, now time.Time) error {
	if r.confirmed != nil {
		return ErrAlreadyConfirmed
	}
	if r.hold.token != token {
		return ErrHoldTokenMismatch
	}
	if !r.hold.expiresAt.After(now) {
		return ErrHoldExpired
	}
	r.hold = nil
	r.confirmed = &customer
	r.updatedAt = now
	return nil
}

func (r *Reservation) Status() Status {
	if r.confirmed != nil {
		return StatusConfirmed
	}
	return StatusHeld
}

func (r *Reservation) IsConfirmed() bool {
	return r.confirmed != nil
}

// IsActiveAt reports whether the reservation occupies its table at now.
// Confirmed reservations always do; holds only until they expire.
func (r *Reservation) IsActiveAt(now time.Time) bool {
	if r.confirmed != nil {
		return true
	}
	return r.hold.expiresAt.After(now)
}

// HeldBy reports whether r is a hold owned by token.
func (r *Reservation) HeldBy(token string) bool {
	return r.hold != nil && r.hold.token == token
}

func (r *Reservation) Hold() (Hold, bool) {
	if r.hold == nil {
		return Hold{}, false
	}
	return *r.hold, true
}

func (r *Reservation) Customer() (Customer, bool) {
	if r.confirmed == nil {
		return Customer{}, false
	}
	return *r.confirmed, true
}

func (r *Reservation) Key() SlotKey {
	return SlotKey{Date: r.date, Slot: r.slot, RegionID: r.regionID}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Date() timegrid.Date  { return r.date }
func (r *Reservation) Slot() timegrid.Slot  { return r.slot }
func (r *Reservation) RegionID() uuid.UUID  { return r.regionID }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
