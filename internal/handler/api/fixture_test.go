//go:build unit

package api_test

import (
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/usecase"
	"venue-reservation/tests/common/builder"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2025, 7, 24, 17, 0, 0, 0, time.UTC)

func testPolicy() *usecase.BookingPolicy {
	policy, err := usecase.NewBookingPolicy(config.NewTestConfig().Booking)
	if err != nil {
		panic(err)
	}
	return policy
}

func mustDate(s string) timegrid.Date {
	d, err := timegrid.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mainHall() *region.Region {
	return builder.NewRegionBuilder().WithName("MAIN_HALL", "Main Hall").WithTables(2, 12).MustBuild()
}

func heldReservation(regionID uuid.UUID, token string) *reservation.Reservation {
	return reservation.ReconstructHold(uuid.New(), mustDate("2025-07-25"), timegrid.Slot("19:00"), regionID,
		token, fixedNow.Add(5*time.Minute), fixedNow, fixedNow)
}

func confirmedReservation(regionID uuid.UUID, c *builder.CustomerBuilder) *reservation.Reservation {
	return reservation.ReconstructConfirmed(uuid.New(), mustDate("2025-07-25"), timegrid.Slot("19:00"), regionID,
		c.MustBuild(), fixedNow, fixedNow.Add(time.Minute))
}
