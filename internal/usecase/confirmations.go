package usecase

import (
	"context"
	"log/slog"
	"strings"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=confirmations.go -destination=../../tests/mock/usecase/confirmations_mock.go -package=usecasemock

type ReservationCommands interface {
	Confirm(ctx context.Context, in ConfirmInput) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type ConfirmInput struct {
	Date         string
	Slot         string
	RegionID     uuid.UUID
	SessionToken string
	Customer     reservation.CustomerParams
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	policy   *BookingPolicy
	notifier shared.ChangeNotifier
	clock    clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, policy *BookingPolicy, notifier shared.ChangeNotifier, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		policy:   policy,
		notifier: notifier,
		clock:    clock,
	}
}

// Confirm re-validates the booking against the region's current rules and
// turns the session's unexpired hold into a confirmed reservation.
func (c *reservationCommandsImpl) Confirm(ctx context.Context, in ConfirmInput) (*reservation.Reservation, error) {
	token := strings.TrimSpace(in.SessionToken)
	if token == "" {
		return nil, invalidInput(ErrEmptySessionToken)
	}
	d, s, err := c.policy.Grid.Validate(in.Date, in.Slot)
	if err != nil {
		return nil, invalidInput(err)
	}
	customer, err := reservation.NewCustomer(in.Customer, c.policy.PartyLimits)
	if err != nil {
		return nil, invalidInput(err)
	}

	r, err := resolveRegion(ctx, c.uow.Reads().Regions(), in.RegionID)
	if err != nil {
		return nil, err
	}
	// an ineligible party is also bad input to confirm; the reason code survives
	if reason := r.Eligibility(customer.Party(), c.policy.Smoking); reason != nil {
		return nil, invalidInput(errs.Mark(reason, errs.ErrIneligible))
	}

	key := reservation.SlotKey{Date: d, Slot: s, RegionID: r.ID()}
	var confirmed *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		hold, err := tx.Reservations().FindHoldForUpdate(ctx, key, token, now)
		if err != nil {
			if isNotFound(err) {
				return invalidInput(ErrNoValidHold)
			}
			return storageFailure(err, "find hold")
		}
		if err := hold.Confirm(token, customer, now); err != nil {
			return invalidInput(errs.Wrap(ErrNoValidHold, err.Error()))
		}
		if err := tx.Reservations().UpdateConfirmed(ctx, hold); err != nil {
			return storageFailure(err, "confirm reservation")
		}
		confirmed = hold
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifier.AvailabilityChanged(ctx, key)
	slog.Info("reservation confirmed",
		"reservation_id", confirmed.ID(),
		"date", d.String(),
		"slot", s.String(),
		"region_id", r.ID(),
		"party_size", customer.PartySize())
	return confirmed, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	deleted, err := c.uow.Reads().Reservations().Delete(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return notFound(ErrReservationNotFound)
		}
		return storageFailure(err, "delete reservation")
	}

	c.notifier.AvailabilityChanged(ctx, deleted.Key())
	slog.Info("reservation cancelled", "reservation_id", id, "status", deleted.Status().String())
	return nil
}
