package usecase

import (
	"context"
	"sort"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=availability.go -destination=../../tests/mock/usecase/availability_mock.go -package=usecasemock

type AvailabilityQueries interface {
	ListAvailableSlots(ctx context.Context, date string) ([]SlotAvailability, error)
	CheckSlot(ctx context.Context, q SlotQuery) (*SlotCheck, error)
	SuggestAlternatives(ctx context.Context, q AlternativesQuery) ([]SlotCheck, error)
}

type SlotQuery struct {
	Date          string
	Slot          string
	RegionID      uuid.UUID
	PartySize     int
	ChildrenCount int
	WantsSmoking  bool
}

type AlternativesQuery struct {
	Date          string
	Slot          string
	PartySize     int
	ChildrenCount int
	WantsSmoking  bool
}

type RegionAvailability struct {
	Region          *region.Region
	AvailableTables int
}

// SlotAvailability lists, for one start time, the regions that still have a
// free table.
type SlotAvailability struct {
	Slot    timegrid.Slot
	Regions []RegionAvailability
}

// SlotCheck is the verdict for one (date, slot, region) candidate. Reason is
// set exactly when Available is false.
type SlotCheck struct {
	Date            timegrid.Date
	Slot            timegrid.Slot
	Region          *region.Region
	Available       bool
	AvailableTables int
	Reason          *region.Ineligibility
}

type availabilityQueriesImpl struct {
	uow    shared.UnitOfWork
	policy *BookingPolicy
	clock  clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, policy *BookingPolicy, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:    uow,
		policy: policy,
		clock:  clock,
	}
}

func (a *availabilityQueriesImpl) ListAvailableSlots(ctx context.Context, date string) ([]SlotAvailability, error) {
	d, err := a.policy.Grid.ParseDate(date)
	if err != nil {
		return nil, invalidInput(err)
	}

	repos := a.uow.Reads()
	regions, err := listActiveRegions(ctx, repos.Regions())
	if err != nil {
		return nil, err
	}
	rows, err := repos.Reservations().ListActiveOnDate(ctx, d, a.clock.Now())
	if err != nil {
		return nil, storageFailure(err, "list reservations for date")
	}
	table := newOccupancyTable(rows)

	slots := a.policy.Grid.Slots()
	out := make([]SlotAvailability, 0, len(slots))
	for _, s := range slots {
		window, err := a.policy.Grid.Overlapping(s)
		if err != nil {
			return nil, err
		}
		entry := SlotAvailability{Slot: s, Regions: []RegionAvailability{}}
		for _, r := range regions {
			free := availableTables(r, table.occupied(r.ID(), window))
			if free > 0 {
				entry.Regions = append(entry.Regions, RegionAvailability{Region: r, AvailableTables: free})
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (a *availabilityQueriesImpl) CheckSlot(ctx context.Context, q SlotQuery) (*SlotCheck, error) {
	d, s, err := a.policy.Grid.Validate(q.Date, q.Slot)
	if err != nil {
		return nil, invalidInput(err)
	}
	party, err := a.policy.validateParty(q.PartySize, q.ChildrenCount)
	if err != nil {
		return nil, err
	}
	party.WantsSmoking = q.WantsSmoking

	repos := a.uow.Reads()
	r, err := repos.Regions().FindByID(ctx, q.RegionID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(ErrRegionNotFound)
		}
		return nil, storageFailure(err, "find region")
	}

	if reason := r.Eligibility(party, a.policy.Smoking); reason != nil {
		return &SlotCheck{Date: d, Slot: s, Region: r, Reason: reason}, nil
	}
	return a.checkTables(ctx, repos.Reservations(), d, s, r)
}

// SuggestAlternatives evaluates the same slot in every eligible region, every
// other slot on the same day, and the same slot on the neighbouring days that
// fall inside the bookable range.
func (a *availabilityQueriesImpl) SuggestAlternatives(ctx context.Context, q AlternativesQuery) ([]SlotCheck, error) {
	d, s, err := a.policy.Grid.Validate(q.Date, q.Slot)
	if err != nil {
		return nil, invalidInput(err)
	}
	party, err := a.policy.validateParty(q.PartySize, q.ChildrenCount)
	if err != nil {
		return nil, err
	}
	party.WantsSmoking = q.WantsSmoking

	repos := a.uow.Reads()
	regions, err := listActiveRegions(ctx, repos.Regions())
	if err != nil {
		return nil, err
	}
	eligible := region.FilterEligible(regions, party, a.policy.Smoking)
	if len(eligible) == 0 {
		return []SlotCheck{}, nil
	}

	type candidate struct {
		date timegrid.Date
		slot timegrid.Slot
	}
	candidates := []candidate{{d, s}}
	for _, other := range a.policy.Grid.Slots() {
		if other != s {
			candidates = append(candidates, candidate{d, other})
		}
	}
	for _, adj := range []timegrid.Date{d.AddDays(-1), d.AddDays(1)} {
		if a.policy.Grid.InRange(adj) {
			candidates = append(candidates, candidate{adj, s})
		}
	}

	reservations := repos.Reservations()
	results := make([]SlotCheck, len(candidates)*len(eligible))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.policy.AlternativesConcurrency)
	for i, c := range candidates {
		for j, r := range eligible {
			idx := i*len(eligible) + j
			g.Go(func() error {
				check, err := a.checkTables(gctx, reservations, c.date, c.slot, r)
				if err != nil {
					return err
				}
				results[idx] = *check
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		x, y := results[i], results[j]
		if x.Available != y.Available {
			return x.Available
		}
		if !x.Date.Equal(y.Date) {
			return x.Date.Before(y.Date)
		}
		return x.Slot < y.Slot
	})
	return results, nil
}

func (a *availabilityQueriesImpl) checkTables(
	ctx context.Context,
	repo shared.ReservationRepository,
	d timegrid.Date,
	s timegrid.Slot,
	r *region.Region,
) (*SlotCheck, error) {
	occupied, err := occupiedCount(ctx, repo, a.policy.Grid, r.ID(), d, s, a.clock.Now())
	if err != nil {
		return nil, err
	}
	free := availableTables(r, occupied)
	if free == 0 {
		return &SlotCheck{Date: d, Slot: s, Region: r, Reason: noTables(r)}, nil
	}
	return &SlotCheck{Date: d, Slot: s, Region: r, Available: true, AvailableTables: free}, nil
}
