package usecase

import (
	"context"
	"strings"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservations.go -destination=../../tests/mock/usecase/reservations_mock.go -package=usecasemock

type ReservationQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ListConfirmed returns confirmed reservations, newest first.
	ListConfirmed(ctx context.Context) ([]*reservation.Reservation, error)
	ListConfirmedByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := q.uow.Reads().Reservations().FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(ErrReservationNotFound)
		}
		return nil, storageFailure(err, "find reservation")
	}
	return r, nil
}

func (q *reservationQueriesImpl) ListConfirmed(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := q.uow.Reads().Reservations().ListConfirmed(ctx)
	if err != nil {
		return nil, storageFailure(err, "list confirmed reservations")
	}
	return rows, nil
}

// ListConfirmedByEmail matches the address the way it was stored at
// confirmation: trimmed and lower-cased.
func (q *reservationQueriesImpl) ListConfirmedByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, invalidInput(ErrEmptyEmail)
	}
	rows, err := q.uow.Reads().Reservations().ListConfirmedByEmail(ctx, email)
	if err != nil {
		return nil, storageFailure(err, "list reservations by email")
	}
	return rows, nil
}
