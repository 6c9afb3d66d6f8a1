//go:build unit

package usecase_test

import (
	"testing"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RegionQueriesTestSuite struct {
	bookingSuite
}

func TestRegionQueriesSuite(t *testing.T) {
	suite.Run(t, new(RegionQueriesTestSuite))
}

func names(regions []*region.Region) []string {
	out := make([]string, len(regions))
	for i, r := range regions {
		out[i] = r.Name()
	}
	return out
}

func (s *RegionQueriesTestSuite) TestListActive() {
	got, err := s.regionQueries.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"BAR", "MAIN_HALL", "RIVERSIDE", "RIVERSIDE_SMOKING", "SOLO"}, names(got))
}

func (s *RegionQueriesTestSuite) TestGet() {
	s.Run("by id", func() {
		got, err := s.regionQueries.GetByID(s.ctx, s.regions["BAR"].ID())
		s.Require().NoError(err)
		s.Equal("Bar", got.DisplayName())

		_, err = s.regionQueries.GetByID(s.ctx, uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound), "got %v", err)
	})

	s.Run("by name includes inactive regions", func() {
		got, err := s.regionQueries.GetByName(s.ctx, "CLOSED")
		s.Require().NoError(err)
		s.False(got.IsActive())

		_, err = s.regionQueries.GetByName(s.ctx, "ROOFTOP")
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *RegionQueriesTestSuite) TestFilterEligible() {
	testCases := []struct {
		name           string
		size, children int
		smoking        bool
		want           []string
	}{
		{name: "couple", size: 2, want: []string{"BAR", "MAIN_HALL", "RIVERSIDE", "SOLO"}},
		{name: "family", size: 4, children: 2, want: []string{"MAIN_HALL", "RIVERSIDE", "SOLO"}},
		{name: "large group", size: 10, want: []string{"MAIN_HALL"}},
		{name: "smokers", size: 6, smoking: true, want: []string{"RIVERSIDE_SMOKING"}},
		{name: "smoking family", size: 3, children: 1, smoking: true, want: []string{}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := s.regionQueries.FilterEligible(s.ctx, tc.size, tc.children, tc.smoking)
			s.Require().NoError(err)
			s.Equal(tc.want, names(got))
		})
	}

	_, err := s.regionQueries.FilterEligible(s.ctx, 13, 0, false)
	s.True(errs.Is(err, errs.ErrInvalidInput), "got %v", err)
}
