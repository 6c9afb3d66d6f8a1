package repository

import (
	"context"
	"log/slog"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/infra"
	"venue-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const regionColumns = `id, name, display_name, capacity_per_table, table_count,
	allow_children, allow_smoking, is_active, created_at, updated_at`

type RegionRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewRegionRepository(db DBTX, logger *slog.Logger) *RegionRepository {
	return &RegionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RegionRepository) ListActive(ctx context.Context) ([]*region.Region, error) {
	rows, err := r.db.Query(ctx, `SELECT `+regionColumns+` FROM regions WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list regions", err)
	}
	defer rows.Close()

	var out []*region.Region
	for rows.Next() {
		rg, err := scanRegion(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan region", err)
		}
		out = append(out, rg)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate regions", err)
	}
	return out, nil
}

func (r *RegionRepository) FindByID(ctx context.Context, id uuid.UUID) (*region.Region, error) {
	row := r.db.QueryRow(ctx, `SELECT `+regionColumns+` FROM regions WHERE id = $1`, id)
	return r.one(row, "region not found", "failed to find region by ID")
}

func (r *RegionRepository) FindByName(ctx context.Context, name string) (*region.Region, error) {
	row := r.db.QueryRow(ctx, `SELECT `+regionColumns+` FROM regions WHERE name = $1`, name)
	return r.one(row, "region not found", "failed to find region by name")
}

// Upsert inserts the region or updates the row with the same name, keeping
// the stored id.
func (r *RegionRepository) Upsert(ctx context.Context, rg *region.Region) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO regions (`+regionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (name) DO UPDATE SET
			display_name       = EXCLUDED.display_name,
			capacity_per_table = EXCLUDED.capacity_per_table,
			table_count        = EXCLUDED.table_count,
			allow_children     = EXCLUDED.allow_children,
			allow_smoking      = EXCLUDED.allow_smoking,
			is_active          = EXCLUDED.is_active,
			updated_at         = now()`,
		rg.ID(), rg.Name(), rg.DisplayName(), rg.CapacityPerTable(), rg.TableCount(),
		rg.AllowChildren(), rg.AllowSmoking(), rg.IsActive(),
	)
	if err != nil {
		if pgconv.IsCheckViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindCheckViolated, "region violates table constraints", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to upsert region", err)
	}
	return nil
}

func (r *RegionRepository) one(row pgx.Row, missMsg, failMsg string) (*region.Region, error) {
	rg, err := scanRegion(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, missMsg, err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, failMsg, err)
	}
	return rg, nil
}

func scanRegion(row pgx.Row) (*region.Region, error) {
	var (
		p                  region.Params
		capacity, tables   int32
		createdAt, updated pgtype.Timestamptz
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.DisplayName, &capacity, &tables,
		&p.AllowChildren, &p.AllowSmoking, &p.IsActive, &createdAt, &updated,
	); err != nil {
		return nil, err
	}
	p.CapacityPerTable = int(capacity)
	p.TableCount = int(tables)
	p.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	p.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return region.NewRegion(p)
}
