//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/usecase"
	"venue-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReservationCommandsTestSuite struct {
	bookingSuite
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestConfirm_Success() {
	held := s.mustHold("2025-07-25", "19:00", "MAIN_HALL", "session-1")
	s.clock.Add(2 * time.Minute)

	res, err := s.confirm("2025-07-25", "19:00", "MAIN_HALL", "session-1",
		newCustomer().WithEmail("  Jane@Example.COM ").WithParty(6, 2).Celebrating("Birthday"))
	s.Require().NoError(err)

	s.Equal(held.HoldID, res.ID(), "the hold is converted in place")
	s.Equal(reservation.StatusConfirmed, res.Status())
	customer, ok := res.Customer()
	s.Require().True(ok)
	s.Equal("jane@example.com", customer.Email().String())
	s.Equal("Birthday", customer.CelebrationName())
	_, isHold := res.Hold()
	s.False(isHold)

	stored, err := s.queries.Get(s.ctx, held.HoldID)
	s.Require().NoError(err)
	s.True(stored.IsConfirmed())
	s.Len(s.notifier.Changed(), 2)
}

func (s *ReservationCommandsTestSuite) TestConfirm_ConfirmedStaysOccupiedAfterHoldExpiry() {
	s.mustHold("2025-07-25", "19:00", "SOLO", "session-1")
	_, err := s.confirm("2025-07-25", "19:00", "SOLO", "session-1", newCustomer())
	s.Require().NoError(err)

	s.clock.Add(time.Hour)
	n, err := s.sweeper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)

	_, err = s.hold("2025-07-25", "19:30", "SOLO", "session-2")
	s.True(errs.Is(err, errs.ErrConflict))
}

func (s *ReservationCommandsTestSuite) TestConfirm_NoValidHold() {
	testCases := []struct {
		name    string
		prepare func()
		token   string
	}{
		{
			name:    "hold expired but not yet swept",
			prepare: func() { s.clock.Add(5 * time.Minute) },
			token:   "session-1",
		},
		{
			name:    "another session's hold",
			prepare: func() {},
			token:   "intruder",
		},
		{
			name: "already confirmed",
			prepare: func() {
				_, err := s.confirm("2025-07-25", "19:00", "MAIN_HALL", "session-1", newCustomer())
				s.Require().NoError(err)
			},
			token: "session-1",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			held := s.mustHold("2025-07-25", "19:00", "MAIN_HALL", "session-1")
			tc.prepare()
			before, err := s.queries.Get(s.ctx, held.HoldID)
			s.Require().NoError(err)

			_, err = s.confirm("2025-07-25", "19:00", "MAIN_HALL", tc.token,
				newCustomer().WithEmail("other@example.com"))
			s.True(errs.Is(err, errs.ErrInvalidInput), "got %v", err)
			s.True(errs.Is(err, usecase.ErrNoValidHold))

			after, err := s.queries.Get(s.ctx, held.HoldID)
			s.Require().NoError(err)
			s.Equal(before.Status(), after.Status(), "no mutation")
			if c, ok := after.Customer(); ok {
				s.Equal("jane@example.com", c.Email().String())
			}
		})
	}
}

func (s *ReservationCommandsTestSuite) TestConfirm_WrongSlotOfSameSession() {
	s.mustHold("2025-07-25", "19:00", "MAIN_HALL", "session-1")

	_, err := s.confirm("2025-07-25", "19:30", "MAIN_HALL", "session-1", newCustomer())
	s.True(errs.Is(err, usecase.ErrNoValidHold))

	_, err = s.confirm("2025-07-25", "19:00", "RIVERSIDE", "session-1", newCustomer())
	s.True(errs.Is(err, usecase.ErrNoValidHold))
}

func (s *ReservationCommandsTestSuite) TestConfirm_InvalidCustomer() {
	testCases := []struct {
		name     string
		customer *builder.CustomerBuilder
		want     error
	}{
		{name: "bad email", customer: newCustomer().WithEmail("jane@example"), want: reservation.ErrInvalidEmail},
		{name: "bad phone", customer: newCustomer().WithPhone("0123"), want: reservation.ErrInvalidPhone},
		{name: "party too large", customer: newCustomer().WithParty(13, 0), want: reservation.ErrPartySizeOutOfRange},
		{name: "more children than guests", customer: newCustomer().WithParty(2, 3), want: reservation.ErrTooManyChildren},
		{name: "celebration without name", customer: newCustomer().Celebrating(" "), want: reservation.ErrCelebrationNameRequired},
	}

	s.mustHold("2025-07-25", "19:00", "MAIN_HALL", "session-1")
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.confirm("2025-07-25", "19:00", "MAIN_HALL", "session-1", tc.customer)
			s.True(errs.Is(err, errs.ErrInvalidInput), "got %v", err)
			s.True(errs.Is(err, tc.want), "got %v", err)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestConfirm_Ineligible() {
	testCases := []struct {
		name     string
		region   string
		customer *builder.CustomerBuilder
		want     region.ReasonCode
	}{
		{name: "children at the bar", region: "BAR", customer: newCustomer().WithParty(3, 1), want: region.ReasonChildrenNotAllowed},
		{name: "party above table capacity", region: "BAR", customer: newCustomer().WithParty(5, 0), want: region.ReasonCapacityExceeded},
		{name: "smoker indoors", region: "RIVERSIDE", customer: newCustomer().WithSmoking(), want: region.ReasonSmokingNotAllowed},
		{name: "non-smoker on the smoking terrace", region: "RIVERSIDE_SMOKING", customer: newCustomer(), want: region.ReasonSmokingRegionOnly},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mustHold("2025-07-25", "19:00", tc.region, "session-"+tc.region)
			_, err := s.confirm("2025-07-25", "19:00", tc.region, "session-"+tc.region, tc.customer)
			s.True(errs.Is(err, errs.ErrIneligible), "got %v", err)
			s.True(errs.Is(err, errs.ErrInvalidInput), "got %v", err)

			var reason *region.Ineligibility
			s.Require().True(errs.As(err, &reason))
			s.Equal(tc.want, reason.Code)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	s.Run("frees the table", func() {
		s.mustHold("2025-07-25", "19:00", "SOLO", "session-1")
		res, err := s.confirm("2025-07-25", "19:00", "SOLO", "session-1", newCustomer())
		s.Require().NoError(err)

		s.Require().NoError(s.commands.Cancel(s.ctx, res.ID()))

		_, err = s.queries.Get(s.ctx, res.ID())
		s.True(errs.Is(err, errs.ErrNotFound))
		s.mustHold("2025-07-25", "19:00", "SOLO", "session-2")
	})

	s.Run("unknown id", func() {
		err := s.commands.Cancel(s.ctx, uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound), "got %v", err)
		s.True(errs.Is(err, usecase.ErrReservationNotFound))
	})
}
