// Command seed upserts the default seating regions into the configured
// Postgres database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"venue-reservation/internal/handler/middleware"
	"venue-reservation/internal/infra/db"
	"venue-reservation/internal/infra/seed"
	"venue-reservation/internal/infra/uow"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/usecase/shared"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall time limit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Seeding failed", "error", err, "stack", errs.ExtractStackLines(err, 8))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	store := uow.NewPostgresUoW(pool, logger)
	params := seed.DefaultRegions()
	if err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return seed.Regions(ctx, tx.Regions(), params, logger)
	}); err != nil {
		return err
	}
	logger.Info("Regions seeded", "count", len(params))
	return nil
}
