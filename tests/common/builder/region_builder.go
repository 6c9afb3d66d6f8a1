//go:build unit || e2e

package builder

import (
	"time"

	"venue-reservation/internal/domain/region"

	"github.com/google/uuid"
)

type RegionBuilder struct {
	ID               uuid.UUID
	Name             string
	DisplayName      string
	CapacityPerTable int
	TableCount       int
	AllowChildren    bool
	AllowSmoking     bool
	IsActive         bool
}

func NewRegionBuilder() *RegionBuilder {
	return &RegionBuilder{
		ID:               uuid.New(),
		Name:             "MAIN_HALL",
		DisplayName:      "Main Hall",
		CapacityPerTable: 12,
		TableCount:       2,
		AllowChildren:    true,
		AllowSmoking:     false,
		IsActive:         true,
	}
}

func (b *RegionBuilder) With(mutate func(*RegionBuilder)) *RegionBuilder {
	mutate(b)
	return b
}

func (b *RegionBuilder) BuildDomain() (*region.Region, error) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return region.NewRegion(region.Params{
		ID:               b.ID,
		Name:             b.Name,
		DisplayName:      b.DisplayName,
		CapacityPerTable: b.CapacityPerTable,
		TableCount:       b.TableCount,
		AllowChildren:    b.AllowChildren,
		AllowSmoking:     b.AllowSmoking,
		IsActive:         b.IsActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
}

// MustBuild is for fixtures whose parameters are known to be valid.
func (b *RegionBuilder) MustBuild() *region.Region {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RegionBuilder) WithName(name, displayName string) *RegionBuilder {
	b.Name = name
	b.DisplayName = displayName
	return b
}

func (b *RegionBuilder) WithTables(count, capacity int) *RegionBuilder {
	b.TableCount = count
	b.CapacityPerTable = capacity
	return b
}

func (b *RegionBuilder) WithChildren(allowed bool) *RegionBuilder {
	b.AllowChildren = allowed
	return b
}

func (b *RegionBuilder) WithSmoking(allowed bool) *RegionBuilder {
	b.AllowSmoking = allowed
	return b
}

func (b *RegionBuilder) AsInactive() *RegionBuilder {
	b.IsActive = false
	return b
}

// DefaultRegions mirrors the venue's seeded floor plan.
func DefaultRegions() []*region.Region {
	return []*region.Region{
		NewRegionBuilder().WithName("MAIN_HALL", "Main Hall").WithTables(2, 12).WithChildren(true).WithSmoking(false).MustBuild(),
		NewRegionBuilder().WithName("BAR", "Bar").WithTables(4, 4).WithChildren(false).WithSmoking(false).MustBuild(),
		NewRegionBuilder().WithName("RIVERSIDE", "Riverside").WithTables(3, 8).WithChildren(true).WithSmoking(false).MustBuild(),
		NewRegionBuilder().WithName("RIVERSIDE_SMOKING", "Riverside (smoking)").WithTables(5, 6).WithChildren(false).WithSmoking(true).MustBuild(),
	}
}
