package schedule

import (
	"context"
	"log/slog"
	"time"

	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/usecase"

	"github.com/robfig/cron/v3"
)

// SweepJob runs one expiry sweep. Failures are logged and left for the next
// tick.
type SweepJob struct {
	sweeper usecase.Sweeper
	timeout time.Duration
	logger  *slog.Logger
}

func NewSweepJob(sweeper usecase.Sweeper, timeout time.Duration, logger *slog.Logger) *SweepJob {
	return &SweepJob{
		sweeper: sweeper,
		timeout: timeout,
		logger:  logger,
	}
}

func (j *SweepJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	started := time.Now()
	n, err := j.sweeper.Sweep(ctx)
	if err != nil {
		j.logger.Error("expiry sweep failed",
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 5))
		return
	}
	if n > 0 {
		j.logger.Info("expiry sweep finished", "reaped", n, "took_ms", time.Since(started).Milliseconds())
	}
}

type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler registers the sweep job on cfg.Schedule. Overlapping runs are
// skipped and a panicking run is recovered.
func NewScheduler(cfg config.SweeperConfig, job cron.Job, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddJob(cfg.Schedule, job); err != nil {
		return nil, errs.Wrapf(err, "invalid sweeper schedule %q", cfg.Schedule)
	}
	return &Scheduler{cron: c, logger: logger}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("expiry sweeper scheduled", "jobs", len(s.cron.Entries()))
}

// Stop waits for a running sweep to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
