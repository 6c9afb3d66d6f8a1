package usecase

import (
	"context"
	"strings"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=regions.go -destination=../../tests/mock/usecase/regions_mock.go -package=usecasemock

type RegionQueries interface {
	ListActive(ctx context.Context) ([]*region.Region, error)
	GetByID(ctx context.Context, id uuid.UUID) (*region.Region, error)
	GetByName(ctx context.Context, name string) (*region.Region, error)
	FilterEligible(ctx context.Context, partySize, childrenCount int, wantsSmoking bool) ([]*region.Region, error)
}

type regionQueriesImpl struct {
	uow    shared.UnitOfWork
	policy *BookingPolicy
}

func NewRegionQueries(uow shared.UnitOfWork, policy *BookingPolicy) RegionQueries {
	return &regionQueriesImpl{
		uow:    uow,
		policy: policy,
	}
}

// ListActive returns the active regions ordered by name.
func (q *regionQueriesImpl) ListActive(ctx context.Context) ([]*region.Region, error) {
	return listActiveRegions(ctx, q.uow.Reads().Regions())
}

func (q *regionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*region.Region, error) {
	r, err := q.uow.Reads().Regions().FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(ErrRegionNotFound)
		}
		return nil, storageFailure(err, "find region")
	}
	return r, nil
}

func (q *regionQueriesImpl) GetByName(ctx context.Context, name string) (*region.Region, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, notFound(ErrRegionNotFound)
	}
	r, err := q.uow.Reads().Regions().FindByName(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(ErrRegionNotFound)
		}
		return nil, storageFailure(err, "find region by name")
	}
	return r, nil
}

func (q *regionQueriesImpl) FilterEligible(ctx context.Context, partySize, childrenCount int, wantsSmoking bool) ([]*region.Region, error) {
	party, err := q.policy.validateParty(partySize, childrenCount)
	if err != nil {
		return nil, err
	}
	party.WantsSmoking = wantsSmoking

	regions, err := q.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return region.FilterEligible(regions, party, q.policy.Smoking), nil
}

func listActiveRegions(ctx context.Context, repo shared.RegionRepository) ([]*region.Region, error) {
	regions, err := repo.ListActive(ctx)
	if err != nil {
		return nil, storageFailure(err, "list regions")
	}
	region.SortByName(regions)
	return regions, nil
}

// resolveRegion looks a region up for a command. An unknown or inactive
// region is the caller's mistake, not a missing resource.
func resolveRegion(ctx context.Context, repo shared.RegionRepository, id uuid.UUID) (*region.Region, error) {
	r, err := repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, invalidInput(ErrRegionNotFound)
		}
		return nil, storageFailure(err, "find region")
	}
	if !r.IsActive() {
		return nil, invalidInput(errs.Wrapf(ErrRegionNotFound, "region %s is not active", r.Name()))
	}
	return r, nil
}
