package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/infra"

	"github.com/google/uuid"
)

type regionRepo struct {
	state  *state
	logger *slog.Logger
}

func (r *regionRepo) ListActive(_ context.Context) ([]*region.Region, error) {
	out := make([]*region.Region, 0, len(r.state.regions))
	for _, rg := range r.state.regions {
		if rg.IsActive() {
			out = append(out, rg)
		}
	}
	region.SortByName(out)
	return out, nil
}

func (r *regionRepo) FindByID(_ context.Context, id uuid.UUID) (*region.Region, error) {
	rg, ok := r.state.regions[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "region not found", nil)
	}
	return rg, nil
}

func (r *regionRepo) FindByName(_ context.Context, name string) (*region.Region, error) {
	for _, rg := range r.state.regions {
		if rg.Name() == name {
			return rg, nil
		}
	}
	return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "region not found", nil)
}

// Upsert matches on name, keeping the stored id when the region exists.
func (r *regionRepo) Upsert(_ context.Context, rg *region.Region) error {
	for id, existing := range r.state.regions {
		if existing.Name() == rg.Name() && id != rg.ID() {
			delete(r.state.regions, id)
			updated, err := region.NewRegion(region.Params{
				ID:               id,
				Name:             rg.Name(),
				DisplayName:      rg.DisplayName(),
				CapacityPerTable: rg.CapacityPerTable(),
				TableCount:       rg.TableCount(),
				AllowChildren:    rg.AllowChildren(),
				AllowSmoking:     rg.AllowSmoking(),
				IsActive:         rg.IsActive(),
				CreatedAt:        existing.CreatedAt(),
				UpdatedAt:        rg.UpdatedAt(),
			})
			if err != nil {
				return infra.WrapRepoErr(r.logger, infra.KindCheckViolated, "invalid region", err)
			}
			r.state.regions[id] = updated
			return nil
		}
	}
	r.state.regions[rg.ID()] = rg
	return nil
}

type reservationRepo struct {
	state  *state
	logger *slog.Logger
}

func (r *reservationRepo) CountActive(_ context.Context, regionID uuid.UUID, date timegrid.Date, slots []timegrid.Slot, now time.Time) (int, error) {
	n := 0
	for _, res := range r.state.reservations {
		if res.RegionID() == regionID && res.Date().Equal(date) &&
			slices.Contains(slots, res.Slot()) && res.IsActiveAt(now) {
			n++
		}
	}
	return n, nil
}

func (r *reservationRepo) ListActiveOnDate(_ context.Context, date timegrid.Date, now time.Time) ([]*reservation.Reservation, error) {
	return r.collect(func(res *reservation.Reservation) bool {
		return res.Date().Equal(date) && res.IsActiveAt(now)
	}), nil
}

func (r *reservationRepo) Insert(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.state.reservations[res.ID()]; ok {
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "reservation already exists", nil)
	}
	if _, ok := r.state.regions[res.RegionID()]; !ok {
		return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, "reservation region does not exist", nil)
	}
	r.state.reservations[res.ID()] = snapshot(res)
	return nil
}

func (r *reservationRepo) FindHoldForUpdate(_ context.Context, key reservation.SlotKey, token string, now time.Time) (*reservation.Reservation, error) {
	for _, res := range r.state.reservations {
		if res.Key() == key && res.HeldBy(token) && res.IsActiveAt(now) {
			return snapshot(res), nil
		}
	}
	return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "hold not found", nil)
}

func (r *reservationRepo) UpdateConfirmed(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.state.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	if !res.IsConfirmed() {
		return infra.WrapRepoErr(r.logger, infra.KindCheckViolated, "reservation is not confirmed", nil)
	}
	r.state.reservations[res.ID()] = snapshot(res)
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.state.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	return snapshot(res), nil
}

func (r *reservationRepo) Delete(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.state.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "reservation not found", nil)
	}
	delete(r.state.reservations, id)
	return res, nil
}

func (r *reservationRepo) DeleteHoldsByToken(_ context.Context, token string) ([]*reservation.Reservation, error) {
	return r.deleteWhere(func(res *reservation.Reservation) bool {
		return res.HeldBy(token)
	}), nil
}

func (r *reservationRepo) DeleteExpiredHolds(_ context.Context, now time.Time) ([]*reservation.Reservation, error) {
	return r.deleteWhere(func(res *reservation.Reservation) bool {
		return !res.IsConfirmed() && !res.IsActiveAt(now)
	}), nil
}

func (r *reservationRepo) ListConfirmed(_ context.Context) ([]*reservation.Reservation, error) {
	out := r.collect(func(res *reservation.Reservation) bool { return res.IsConfirmed() })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

func (r *reservationRepo) ListConfirmedByEmail(_ context.Context, email string) ([]*reservation.Reservation, error) {
	out := r.collect(func(res *reservation.Reservation) bool {
		c, ok := res.Customer()
		return ok && c.Email().String() == email
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date().Equal(out[j].Date()) {
			return out[i].Date().After(out[j].Date())
		}
		return out[i].Slot() < out[j].Slot()
	})
	return out, nil
}

// collect returns matching rows in a deterministic order: date, slot, then
// creation time.
func (r *reservationRepo) collect(match func(*reservation.Reservation) bool) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0)
	for _, res := range r.state.reservations {
		if match(res) {
			out = append(out, snapshot(res))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date().Equal(b.Date()) {
			return a.Date().Before(b.Date())
		}
		if a.Slot() != b.Slot() {
			return a.Slot() < b.Slot()
		}
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().Before(b.CreatedAt())
		}
		return a.ID().String() < b.ID().String()
	})
	return out
}

func (r *reservationRepo) deleteWhere(match func(*reservation.Reservation) bool) []*reservation.Reservation {
	deleted := r.collect(match)
	for _, res := range deleted {
		delete(r.state.reservations, res.ID())
	}
	return deleted
}
