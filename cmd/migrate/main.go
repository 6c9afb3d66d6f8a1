// Command migrate applies db/schema.sql to the configured database with the
// atlas declarative workflow.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"venue-reservation/internal/handler/middleware"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall time limit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := apply(ctx, cfg, *dryRun, logger); err != nil {
		logger.Error("Schema apply failed", "error", err, "stack", errs.ExtractStackLines(err, 8))
		os.Exit(1)
	}
}

func apply(ctx context.Context, cfg config.Config, dryRun bool, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(cfg.Atlas.WorkDir, cfg.Atlas.Binary)
	if err != nil {
		return errs.Wrap(err, "create atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Atlas.SchemaURL,
		DevURL:      cfg.Atlas.DevURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return errs.Wrap(err, "atlas schema apply")
	}

	if dryRun {
		for _, stmt := range res.Changes.Pending {
			logger.Info("Pending statement", "sql", stmt)
		}
		logger.Info("Dry run finished", "pending", len(res.Changes.Pending))
		return nil
	}
	logger.Info("Schema applied", "statements", len(res.Changes.Applied), "target", cfg.Atlas.SchemaURL)
	return nil
}
