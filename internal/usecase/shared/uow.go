package shared

import (
	"context"
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Repositories outside any transaction, for single-statement queries
	Reads() Repositories
}

type Repositories interface {
	Regions() RegionRepository
	Reservations() ReservationRepository
}

type Tx interface {
	Repositories
	// LockOccupancy serialises every occupancy change for regionID on date
	// until the transaction ends.
	LockOccupancy(ctx context.Context, regionID uuid.UUID, date timegrid.Date) error
}

type RegionRepository interface {
	ListActive(ctx context.Context) ([]*region.Region, error)
	FindByID(ctx context.Context, id uuid.UUID) (*region.Region, error)
	FindByName(ctx context.Context, name string) (*region.Region, error)
	Upsert(ctx context.Context, r *region.Region) error
}

type ReservationRepository interface {
	// CountActive counts reservations in regionID on date starting at any of
	// slots that are confirmed or held past now.
	CountActive(ctx context.Context, regionID uuid.UUID, date timegrid.Date, slots []timegrid.Slot, now time.Time) (int, error)
	ListActiveOnDate(ctx context.Context, date timegrid.Date, now time.Time) ([]*reservation.Reservation, error)
	Insert(ctx context.Context, r *reservation.Reservation) error
	// FindHoldForUpdate returns the token's hold on key that is still valid at
	// now, locking it for the rest of the transaction.
	FindHoldForUpdate(ctx context.Context, key reservation.SlotKey, token string, now time.Time) (*reservation.Reservation, error)
	UpdateConfirmed(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	DeleteHoldsByToken(ctx context.Context, token string) ([]*reservation.Reservation, error)
	DeleteExpiredHolds(ctx context.Context, now time.Time) ([]*reservation.Reservation, error)
	ListConfirmed(ctx context.Context) ([]*reservation.Reservation, error)
	ListConfirmedByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error)
}
