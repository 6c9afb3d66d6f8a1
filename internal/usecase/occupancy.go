package usecase

import (
	"context"
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReasonNoTables marks a slot check that passed eligibility but found every
// table taken.
const ReasonNoTables region.ReasonCode = "NO_TABLES_AVAILABLE"

func noTables(r *region.Region) *region.Ineligibility {
	return &region.Ineligibility{
		Code:    ReasonNoTables,
		Message: "No tables available in " + r.DisplayName() + " for this time slot",
	}
}

// occupiedCount counts the reservations whose window overlaps slot in the
// region on date. Confirmed rows always count; holds only until they expire.
func occupiedCount(
	ctx context.Context,
	repo shared.ReservationRepository,
	grid *timegrid.Grid,
	regionID uuid.UUID,
	date timegrid.Date,
	slot timegrid.Slot,
	now time.Time,
) (int, error) {
	window, err := grid.Overlapping(slot)
	if err != nil {
		return 0, invalidInput(err)
	}
	n, err := repo.CountActive(ctx, regionID, date, window, now)
	if err != nil {
		return 0, storageFailure(err, "count occupancy")
	}
	return n, nil
}

func availableTables(r *region.Region, occupied int) int {
	return max(0, r.TableCount()-occupied)
}

// occupancyTable is the in-memory counterpart of occupiedCount, built from one
// date's active reservations.
type occupancyTable map[uuid.UUID]map[timegrid.Slot]int

func newOccupancyTable(rows []*reservation.Reservation) occupancyTable {
	t := occupancyTable{}
	for _, r := range rows {
		bySlot, ok := t[r.RegionID()]
		if !ok {
			bySlot = map[timegrid.Slot]int{}
			t[r.RegionID()] = bySlot
		}
		bySlot[r.Slot()]++
	}
	return t
}

func (t occupancyTable) occupied(regionID uuid.UUID, window []timegrid.Slot) int {
	bySlot := t[regionID]
	n := 0
	for _, s := range window {
		n += bySlot[s]
	}
	return n
}
