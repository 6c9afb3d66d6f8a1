package memstore

import (
	"context"
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// lockedRepos runs every call as its own short transaction.
type lockedRepos struct {
	store *Store
}

func (l *lockedRepos) Regions() shared.RegionRepository {
	return &lockedRegions{store: l.store}
}

func (l *lockedRepos) Reservations() shared.ReservationRepository {
	return &lockedReservations{store: l.store}
}

func call[T any](ctx context.Context, s *Store, fn func(tx *memTx) (T, error)) (T, error) {
	var out T
	err := s.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		var err error
		out, err = fn(tx.(*memTx))
		return err
	})
	return out, err
}

type lockedRegions struct {
	store *Store
}

func (l *lockedRegions) ListActive(ctx context.Context) ([]*region.Region, error) {
	return call(ctx, l.store, func(tx *memTx) ([]*region.Region, error) {
		return tx.Regions().ListActive(ctx)
	})
}

func (l *lockedRegions) FindByID(ctx context.Context, id uuid.UUID) (*region.Region, error) {
	return call(ctx, l.store, func(tx *memTx) (*region.Region, error) {
		return tx.Regions().FindByID(ctx, id)
	})
}

func (l *lockedRegions) FindByName(ctx context.Context, name string) (*region.Region, error) {
	return call(ctx, l.store, func(tx *memTx) (*region.Region, error) {
		return tx.Regions().FindByName(ctx, name)
	})
}

func (l *lockedRegions) Upsert(ctx context.Context, r *region.Region) error {
	_, err := call(ctx, l.store, func(tx *memTx) (struct{}, error) {
		return struct{}{}, tx.Regions().Upsert(ctx, r)
	})
	return err
}

type lockedReservations struct {
	store *Store
}

func (l *lockedReservations) CountActive(ctx context.Context, regionID uuid.UUID, date timegrid.Date, slots []timegrid.Slot, now time.Time) (int, error) {
	return call(ctx, l.store, func(tx *memTx) (int, error) {
		return tx.Reservations().CountActive(ctx, regionID, date, slots, now)
	})
}

func (l *lockedReservations) ListActiveOnDate(ctx context.Context, date timegrid.Date, now time.Time) ([]*reservation.Reservation, error) {
	return call(ctx, l.store, func(tx *memTx) ([]*reservation.Reservation, error) {
		return tx.Reservations().ListActiveOnDate(ctx, date, now)
	})
}

func (l *lockedReservations) Insert(ctx context.Context, r *reservation.Reservation) error {
	_, err := call(ctx, l.store, func(tx *memTx) (struct{}, error) {
		return struct{}{}, tx.Reservations().Insert(ctx, r)
	})
	return err
}

func (l *lockedReservations) FindHoldForUpdate(ctx context.Context, key reservation.SlotKey, token string, now time.Time) (*reservation.Reservation, error) {
	return call(ctx, l.store, func(tx *memTx) (*reservation.Reservation, error) {
		return tx.Reservations().FindHoldForUpdate(ctx, key, token, now)
	})
}

func (l *lockedReservations) UpdateConfirmed(ctx context.Context, r *reservation.Reservation) error {
	_, err := call(ctx, l.store, func(tx *memTx) (struct{}, error) {
		return struct{}{}, tx.Reservations().UpdateConfirmed(ctx, r)
	})
	return err
}

func (l *lockedReservations) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return call(ctx, l.store, func(tx *memTx) (*reservation.Reservation, error) {
		return tx.Reservations().FindByID(ctx, id)
	})
}

func (l *lockedReservations) Delete(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return call(ctx, l.store, func(tx *memTx) (*reservation.Reservation, error) {
		return tx.Reservations().Delete(ctx, id)
	})
}

func (l *lockedReservations) DeleteHoldsByToken(ctx context.Context, token string) ([]*reservation.Reservation, error) {
	return call(ctx, l.store, func(tx *memTx) ([]*reservation.Reservation, error) {
		return tx.Reservations().DeleteHoldsByToken(ctx, token)
	})
}

func (l *lockedReservations) DeleteExpiredHolds(ctx context.Context, now time.Time) ([]*reservation.Reservation, error) {
	return call(ctx, l.store, func(tx *memTx) ([]*reservation.Reservation, error) {
		return tx.Reservations().DeleteExpiredHolds(ctx, now)
	})
}

func (l *lockedReservations) ListConfirmed(ctx context.Context) ([]*reservation.Reservation, error) {
	return call(ctx, l.store, func(tx *memTx) ([]*reservation.Reservation, error) {
		return tx.Reservations().ListConfirmed(ctx)
	})
}

func (l *lockedReservations) ListConfirmedByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error) {
	return call(ctx, l.store, func(tx *memTx) ([]*reservation.Reservation, error) {
		return tx.Reservations().ListConfirmedByEmail(ctx, email)
	})
}
