//go:build unit

package schedule_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"venue-reservation/internal/infra/schedule"
	"venue-reservation/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSweeper struct {
	calls atomic.Int32
	n     int
	err   error
}

func (s *stubSweeper) Sweep(ctx context.Context) (int, error) {
	s.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("sweep ran without a deadline")
	}
	return s.n, s.err
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSweepJob_Run(t *testing.T) {
	t.Run("success: logs reaped count", func(t *testing.T) {
		var buf bytes.Buffer
		sweeper := &stubSweeper{n: 3}

		schedule.NewSweepJob(sweeper, time.Second, newLogger(&buf)).Run()

		assert.Equal(t, int32(1), sweeper.calls.Load())
		assert.Contains(t, buf.String(), "reaped=3")
	})

	t.Run("failure is logged, not propagated", func(t *testing.T) {
		var buf bytes.Buffer
		sweeper := &stubSweeper{err: errors.New("connection refused")}

		assert.NotPanics(t, func() {
			schedule.NewSweepJob(sweeper, time.Second, newLogger(&buf)).Run()
		})
		assert.Contains(t, buf.String(), "expiry sweep failed")
		assert.Contains(t, buf.String(), "connection refused")
	})
}

func TestScheduler(t *testing.T) {
	t.Run("runs the job on schedule", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf)
		sweeper := &stubSweeper{}
		job := schedule.NewSweepJob(sweeper, time.Second, logger)

		s, err := schedule.NewScheduler(config.SweeperConfig{Schedule: "@every 1s"}, job, logger)
		require.NoError(t, err)
		s.Start()

		assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, s.Stop(ctx))
	})

	t.Run("invalid schedule", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf)
		job := schedule.NewSweepJob(&stubSweeper{}, 0, logger)

		_, err := schedule.NewScheduler(config.SweeperConfig{Schedule: "every minute"}, job, logger)
		assert.Error(t, err)
	})
}
