package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"venue-reservation/internal/infra/db"
	"venue-reservation/internal/infra/memstore"
	"venue-reservation/internal/infra/seed"
	"venue-reservation/internal/infra/uow"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

const (
	driverPostgres = "postgres"
	driverMemory   = "memory"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewStore,
	),
)

// NewStore opens the configured reservation store. The in-memory store
// always starts from the default floor plan; Postgres is seeded only when
// STORE_SEED is set.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	var (
		store   shared.UnitOfWork
		cleanup func()
		seedIt  bool
	)

	switch cfg.Store.Driver {
	case driverMemory:
		store = memstore.New(logger)
		seedIt = true
	case driverPostgres:
		pool, closePool, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		store = uow.NewPostgresUoW(pool, logger)
		cleanup = closePool
		seedIt = cfg.Store.Seed
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !seedIt {
				return nil
			}
			return store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return seed.Regions(ctx, tx.Regions(), seed.DefaultRegions(), logger)
			})
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	logger.Info("Reservation store ready", "driver", cfg.Store.Driver)
	return store, nil
}
