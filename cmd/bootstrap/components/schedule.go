package components

import (
	"context"
	"log/slog"

	"venue-reservation/internal/infra/schedule"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/usecase"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewSweepScheduler,
	),
	fx.Invoke(func(*schedule.Scheduler) {}),
)

func NewSweepScheduler(lc fx.Lifecycle, cfg config.Config, sweeper usecase.Sweeper, logger *slog.Logger) (*schedule.Scheduler, error) {
	job := schedule.NewSweepJob(sweeper, cfg.Sweeper.Timeout, logger)
	s, err := schedule.NewScheduler(cfg.Sweeper, job, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s, nil
}
