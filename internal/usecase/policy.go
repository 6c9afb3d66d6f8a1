package usecase

import (
	"fmt"
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/pkg/errs"
)

// BookingPolicy is the venue configuration every booking operation runs
// against.
type BookingPolicy struct {
	Grid                    *timegrid.Grid
	HoldDuration            time.Duration
	PartyLimits             reservation.PartyLimits
	Smoking                 region.SmokingPolicy
	AlternativesConcurrency int
}

func NewBookingPolicy(cfg config.BookingConfig) (*BookingPolicy, error) {
	grid, err := timegrid.New(cfg.TimeSlots, cfg.ReservationDuration, cfg.DateFrom, cfg.DateTo)
	if err != nil {
		return nil, fmt.Errorf("time grid: %w", err)
	}
	if cfg.HoldDuration <= 0 {
		return nil, fmt.Errorf("hold duration must be positive, got %s", cfg.HoldDuration)
	}
	limits, err := reservation.NewPartyLimits(cfg.MinPartySize, cfg.MaxPartySize)
	if err != nil {
		return nil, err
	}
	smoking, err := region.ParseSmokingPolicy(cfg.SmokingPolicy)
	if err != nil {
		return nil, err
	}
	concurrency := cfg.AlternativesConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &BookingPolicy{
		Grid:                    grid,
		HoldDuration:            cfg.HoldDuration,
		PartyLimits:             limits,
		Smoking:                 smoking,
		AlternativesConcurrency: concurrency,
	}, nil
}

// validateParty checks a party composition supplied to a query.
func (p *BookingPolicy) validateParty(size, children int) (region.Party, error) {
	if !p.PartyLimits.Contains(size) {
		return region.Party{}, invalidInput(errs.Newf("party size must be between %d and %d", p.PartyLimits.Min, p.PartyLimits.Max))
	}
	if children < 0 {
		return region.Party{}, invalidInput(reservation.ErrInvalidChildrenCount)
	}
	if children > size {
		return region.Party{}, invalidInput(reservation.ErrTooManyChildren)
	}
	return region.Party{Size: size, Children: children}, nil
}
