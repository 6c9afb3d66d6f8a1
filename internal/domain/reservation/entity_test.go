//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 7, 24, 17, 0, 0, 0, time.UTC)

func newHold(t *testing.T, token string) *reservation.Reservation {
	t.Helper()
	date, err := timegrid.ParseDate("2025-07-25")
	require.NoError(t, err)
	r, err := reservation.NewHold(date, "19:00", uuid.New(), token, now, 5*time.Minute)
	require.NoError(t, err)
	return r
}

func TestNewHold(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r := newHold(t, "session-1")

		assert.Equal(t, reservation.StatusHeld, r.Status())
		h, ok := r.Hold()
		require.True(t, ok)
		assert.Equal(t, "session-1", h.Token())
		assert.Equal(t, now.Add(5*time.Minute), h.ExpiresAt())
		_, ok = r.Customer()
		assert.False(t, ok, "a hold carries no customer data")
		assert.True(t, r.HeldBy("session-1"))
		assert.False(t, r.HeldBy("session-2"))
	})

	t.Run("blank token rejected", func(t *testing.T) {
		_, err := reservation.NewHold(timegrid.Date{}, "19:00", uuid.New(), "  ", now, time.Minute)
		assert.ErrorIs(t, err, reservation.ErrEmptyHoldToken)
	})

	t.Run("non-positive duration rejected", func(t *testing.T) {
		_, err := reservation.NewHold(timegrid.Date{}, "19:00", uuid.New(), "s", now, 0)
		assert.ErrorIs(t, err, reservation.ErrInvalidHoldDuration)
	})
}

func TestReservation_IsActiveAt(t *testing.T) {
	r := newHold(t, "session-1")

	assert.True(t, r.IsActiveAt(now.Add(4*time.Minute)))
	assert.False(t, r.IsActiveAt(now.Add(5*time.Minute)), "a hold is inactive from its expiry instant")
	assert.False(t, r.IsActiveAt(now.Add(time.Hour)))

	require.NoError(t, r.Confirm("session-1", builder.NewCustomerBuilder().MustBuild(), now.Add(time.Minute)))
	assert.True(t, r.IsActiveAt(now.Add(24*time.Hour)), "confirmed reservations never lapse")
}

func TestReservation_Confirm(t *testing.T) {
	customer := builder.NewCustomerBuilder().MustBuild()

	t.Run("converts the hold in place", func(t *testing.T) {
		r := newHold(t, "session-1")
		id := r.ID()

		require.NoError(t, r.Confirm("session-1", customer, now.Add(time.Minute)))

		assert.Equal(t, id, r.ID())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		_, held := r.Hold()
		assert.False(t, held, "confirmed reservations carry no hold")
		got, ok := r.Customer()
		require.True(t, ok)
		assert.Equal(t, customer, got)
		assert.False(t, r.HeldBy("session-1"))
		assert.Equal(t, now.Add(time.Minute), r.UpdatedAt())
	})

	testCases := []struct {
		name  string
		token string
		at    time.Time
		errIs error
	}{
		{name: "other session", token: "session-2", at: now, errIs: reservation.ErrHoldTokenMismatch},
		{name: "at expiry", token: "session-1", at: now.Add(5 * time.Minute), errIs: reservation.ErrHoldExpired},
		{name: "after expiry", token: "session-1", at: now.Add(10 * time.Minute), errIs: reservation.ErrHoldExpired},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newHold(t, "session-1")
			err := r.Confirm(tc.token, customer, tc.at)
			require.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, reservation.StatusHeld, r.Status(), "a failed confirm mutates nothing")
		})
	}

	t.Run("second confirm rejected", func(t *testing.T) {
		r := newHold(t, "session-1")
		require.NoError(t, r.Confirm("session-1", customer, now))
		assert.ErrorIs(t, r.Confirm("session-1", customer, now), reservation.ErrAlreadyConfirmed)
	})
}

func TestReservation_Key(t *testing.T) {
	r := newHold(t, "session-1")
	key := r.Key()
	assert.Equal(t, "2025-07-25", key.Date.String())
	assert.Equal(t, timegrid.Slot("19:00"), key.Slot)
	assert.Equal(t, r.RegionID(), key.RegionID)
}
