//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"venue-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type SweeperTestSuite struct {
	bookingSuite
}

func TestSweeperSuite(t *testing.T) {
	suite.Run(t, new(SweeperTestSuite))
}

func (s *SweeperTestSuite) TestSweep() {
	first := s.mustHold("2025-07-25", "19:00", "SOLO", "session-1")
	s.clock.Add(time.Minute)
	s.mustHold("2025-07-25", "19:00", "MAIN_HALL", "session-2")
	s.mustHold("2025-07-25", "20:00", "BAR", "session-2")
	notified := len(s.notifier.Changed())

	s.Run("nothing has expired yet", func() {
		s.clock.Set(first.ExpiresAt.Add(-time.Second))
		n, err := s.sweeper.Sweep(s.ctx)
		s.Require().NoError(err)
		s.Zero(n)
		s.Len(s.notifier.Changed(), notified)
	})

	s.Run("a hold expiring exactly now is reaped", func() {
		s.clock.Set(first.ExpiresAt)
		n, err := s.sweeper.Sweep(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal([]string{"session-1"}, s.notifier.Expired())

		_, err = s.queries.Get(s.ctx, first.HoldID)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("remaining holds expire together", func() {
		s.clock.Add(time.Hour)
		n, err := s.sweeper.Sweep(s.ctx)
		s.Require().NoError(err)
		s.Equal(2, n)
		s.Len(s.notifier.Changed(), notified+3)
		s.ElementsMatch([]string{"session-1", "session-2", "session-2"}, s.notifier.Expired())
	})

	s.Run("sweeping again is a no-op", func() {
		n, err := s.sweeper.Sweep(s.ctx)
		s.Require().NoError(err)
		s.Zero(n)
		s.Len(s.notifier.Changed(), notified+3)
	})
}

func (s *SweeperTestSuite) TestSweep_KeepsConfirmed() {
	s.mustHold("2025-07-25", "19:00", "SOLO", "session-1")
	res, err := s.confirm("2025-07-25", "19:00", "SOLO", "session-1", newCustomer())
	s.Require().NoError(err)

	s.clock.Add(24 * time.Hour)
	n, err := s.sweeper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)

	got, err := s.queries.Get(s.ctx, res.ID())
	s.Require().NoError(err)
	s.True(got.IsConfirmed())
}
