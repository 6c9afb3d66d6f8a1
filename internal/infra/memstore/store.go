package memstore

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps regions and reservations in process memory. A transaction holds
// the store mutex from start to commit and works on a staged copy, so
// transactions are serialisable and a failed one leaves nothing behind.
type Store struct {
	mu     sync.Mutex
	state  *state
	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	return &Store{
		state: &state{
			regions:      map[uuid.UUID]*region.Region{},
			reservations: map[uuid.UUID]*reservation.Reservation{},
		},
		logger: logger,
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	staged := s.state.clone()
	if err := fn(ctx, &memTx{state: staged, logger: s.logger}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *Store) Reads() shared.Repositories {
	return &lockedRepos{store: s}
}

type memTx struct {
	state  *state
	logger *slog.Logger
}

func (t *memTx) Regions() shared.RegionRepository {
	return &regionRepo{state: t.state, logger: t.logger}
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{state: t.state, logger: t.logger}
}

// LockOccupancy is satisfied by the store mutex the transaction already holds.
func (t *memTx) LockOccupancy(ctx context.Context, _ uuid.UUID, _ timegrid.Date) error {
	return ctx.Err()
}

type state struct {
	regions      map[uuid.UUID]*region.Region
	reservations map[uuid.UUID]*reservation.Reservation
}

// clone copies the maps. Regions are immutable and reservations are replaced,
// never mutated, once stored, so the values can be shared.
func (s *state) clone() *state {
	return &state{
		regions:      maps.Clone(s.regions),
		reservations: maps.Clone(s.reservations),
	}
}

func snapshot(r *reservation.Reservation) *reservation.Reservation {
	cp := *r
	return &cp
}
