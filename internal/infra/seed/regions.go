package seed

import (
	"context"
	"log/slog"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/usecase/shared"
)

// DefaultRegions is the venue's floor plan.
func DefaultRegions() []region.Params {
	return []region.Params{
		{Name: "MAIN_HALL", DisplayName: "Main Hall", CapacityPerTable: 12, TableCount: 2, AllowChildren: true, IsActive: true},
		{Name: "BAR", DisplayName: "Bar", CapacityPerTable: 4, TableCount: 4, IsActive: true},
		{Name: "RIVERSIDE", DisplayName: "Riverside", CapacityPerTable: 8, TableCount: 3, AllowChildren: true, IsActive: true},
		{Name: "RIVERSIDE_SMOKING", DisplayName: "Riverside (smoking)", CapacityPerTable: 6, TableCount: 5, AllowSmoking: true, IsActive: true},
	}
}

// Regions upserts every region by name. Running it twice leaves one row per
// region.
func Regions(ctx context.Context, repo shared.RegionRepository, params []region.Params, logger *slog.Logger) error {
	for _, p := range params {
		r, err := region.NewRegion(p)
		if err != nil {
			return errs.Wrapf(err, "invalid region %q", p.Name)
		}
		if err := repo.Upsert(ctx, r); err != nil {
			return errs.Wrapf(err, "failed to seed region %q", p.Name)
		}
		logger.Info("region seeded", "name", r.Name(), "tables", r.TableCount(), "capacity", r.CapacityPerTable())
	}
	return nil
}
