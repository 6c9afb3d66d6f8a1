package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=holds.go -destination=../../tests/mock/usecase/holds_mock.go -package=usecasemock

type HoldCommands interface {
	AcquireHold(ctx context.Context, in AcquireHoldInput) (*HoldResult, error)
	// Release drops every hold of the session and reports how many there were.
	Release(ctx context.Context, sessionToken string) (int, error)
}

type AcquireHoldInput struct {
	Date         string
	Slot         string
	RegionID     uuid.UUID
	SessionToken string
}

type HoldResult struct {
	HoldID    uuid.UUID
	Date      timegrid.Date
	Slot      timegrid.Slot
	RegionID  uuid.UUID
	ExpiresAt time.Time
}

type holdCommandsImpl struct {
	uow      shared.UnitOfWork
	policy   *BookingPolicy
	notifier shared.ChangeNotifier
	clock    clock.Clock
}

func NewHoldCommands(uow shared.UnitOfWork, policy *BookingPolicy, notifier shared.ChangeNotifier, clock clock.Clock) HoldCommands {
	return &holdCommandsImpl{
		uow:      uow,
		policy:   policy,
		notifier: notifier,
		clock:    clock,
	}
}

// AcquireHold reserves one table for the session. Counting and inserting
// happen under the occupancy lock of (region, date), so concurrent callers
// can never both take the last table.
func (h *holdCommandsImpl) AcquireHold(ctx context.Context, in AcquireHoldInput) (*HoldResult, error) {
	token := strings.TrimSpace(in.SessionToken)
	if token == "" {
		return nil, invalidInput(ErrEmptySessionToken)
	}
	d, s, err := h.policy.Grid.Validate(in.Date, in.Slot)
	if err != nil {
		return nil, invalidInput(err)
	}

	var hold *reservation.Reservation
	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := resolveRegion(ctx, tx.Regions(), in.RegionID)
		if err != nil {
			return err
		}
		if err := tx.LockOccupancy(ctx, r.ID(), d); err != nil {
			return storageFailure(err, "lock occupancy")
		}

		now := h.clock.Now()
		occupied, err := occupiedCount(ctx, tx.Reservations(), h.policy.Grid, r.ID(), d, s, now)
		if err != nil {
			return err
		}
		if occupied >= r.TableCount() {
			return errs.Mark(errs.Wrapf(ErrNoTablesAvailable, "%s at %s on %s", r.DisplayName(), s, d), errs.ErrConflict)
		}

		hold, err = reservation.NewHold(d, s, r.ID(), token, now, h.policy.HoldDuration)
		if err != nil {
			return invalidInput(err)
		}
		if err := tx.Reservations().Insert(ctx, hold); err != nil {
			return storageFailure(err, "insert hold")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.AvailabilityChanged(ctx, hold.Key())
	slog.Info("hold acquired",
		"hold_id", hold.ID(),
		"date", d.String(),
		"slot", s.String(),
		"region_id", hold.RegionID())

	held, _ := hold.Hold()
	return &HoldResult{
		HoldID:    hold.ID(),
		Date:      d,
		Slot:      s,
		RegionID:  hold.RegionID(),
		ExpiresAt: held.ExpiresAt(),
	}, nil
}

func (h *holdCommandsImpl) Release(ctx context.Context, sessionToken string) (int, error) {
	token := strings.TrimSpace(sessionToken)
	if token == "" {
		return 0, invalidInput(ErrEmptySessionToken)
	}

	released, err := h.uow.Reads().Reservations().DeleteHoldsByToken(ctx, token)
	if err != nil {
		return 0, storageFailure(err, "release holds")
	}
	if len(released) == 0 {
		return 0, notFound(ErrNoHoldsForSession)
	}

	for _, r := range released {
		h.notifier.AvailabilityChanged(ctx, r.Key())
	}
	slog.Info("holds released", "count", len(released))
	return len(released), nil
}
