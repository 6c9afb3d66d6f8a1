//go:build unit

package region_test

import (
	"testing"

	"venue-reservation/internal/domain/region"
	"venue-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RegionBuilder)
	errIs  error
}

func TestRegion(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRegionBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "MAIN_HALL", actual.Name())
		assert.Equal(t, "Main Hall", actual.DisplayName())
		assert.Equal(t, 24, actual.TotalSeats())
		assert.True(t, actual.IsActive())
	})

	t.Run("missing id is generated", func(t *testing.T) {
		actual, err := builder.NewRegionBuilder().With(func(b *builder.RegionBuilder) { b.ID = uuid.Nil }).BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	t.Run("display name defaults to name", func(t *testing.T) {
		actual, err := builder.NewRegionBuilder().WithName("BAR", "  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "BAR", actual.DisplayName())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank name", mutate: func(b *builder.RegionBuilder) { b.WithName(" ", "x") }, errIs: region.ErrEmptyRegionName},
			{name: "no tables", mutate: func(b *builder.RegionBuilder) { b.WithTables(0, 4) }, errIs: region.ErrInvalidTableCount},
			{name: "zero capacity", mutate: func(b *builder.RegionBuilder) { b.WithTables(2, 0) }, errIs: region.ErrInvalidTableCapacity},
			{name: "single seat table", mutate: func(b *builder.RegionBuilder) { b.WithTables(1, 1) }},
			{name: "inactive region", mutate: func(b *builder.RegionBuilder) { b.AsInactive() }},
		})
	})

	t.Run("sort by name", func(t *testing.T) {
		regions := builder.DefaultRegions()
		region.SortByName(regions)
		names := make([]string, len(regions))
		for i, r := range regions {
			names[i] = r.Name()
		}
		assert.Equal(t, []string{"BAR", "MAIN_HALL", "RIVERSIDE", "RIVERSIDE_SMOKING"}, names)
	})
}

func TestRegion_Eligibility(t *testing.T) {
	byName := map[string]*region.Region{}
	for _, r := range builder.DefaultRegions() {
		byName[r.Name()] = r
	}

	testCases := []struct {
		name     string
		region   string
		party    region.Party
		policy   region.SmokingPolicy
		expected region.ReasonCode
	}{
		{name: "fits main hall", region: "MAIN_HALL", party: region.Party{Size: 12, Children: 3}, policy: region.SmokingExact},
		{name: "bar table too small", region: "BAR", party: region.Party{Size: 5}, policy: region.SmokingExact, expected: region.ReasonCapacityExceeded},
		{name: "bar rejects children", region: "BAR", party: region.Party{Size: 3, Children: 1}, policy: region.SmokingExact, expected: region.ReasonChildrenNotAllowed},
		{name: "smoker in non-smoking region", region: "RIVERSIDE", party: region.Party{Size: 2, WantsSmoking: true}, policy: region.SmokingExact, expected: region.ReasonSmokingNotAllowed},
		{name: "smoker in smoking region", region: "RIVERSIDE_SMOKING", party: region.Party{Size: 2, WantsSmoking: true}, policy: region.SmokingExact},
		{name: "non-smoker kept out of smoking region", region: "RIVERSIDE_SMOKING", party: region.Party{Size: 2}, policy: region.SmokingExact, expected: region.ReasonSmokingRegionOnly},
		{name: "non-smoker admitted under allowed policy", region: "RIVERSIDE_SMOKING", party: region.Party{Size: 2}, policy: region.SmokingAllowed},
		{name: "smoker still rejected under allowed policy", region: "BAR", party: region.Party{Size: 2, WantsSmoking: true}, policy: region.SmokingAllowed, expected: region.ReasonSmokingNotAllowed},
		{name: "capacity is checked before children", region: "BAR", party: region.Party{Size: 6, Children: 2}, policy: region.SmokingExact, expected: region.ReasonCapacityExceeded},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := byName[tc.region].Eligibility(tc.party, tc.policy)
			if tc.expected == "" {
				assert.Nil(t, actual)
				return
			}
			require.NotNil(t, actual)
			assert.Equal(t, tc.expected, actual.Code)
			assert.NotEmpty(t, actual.Message)
		})
	}

	t.Run("inactive region is never eligible", func(t *testing.T) {
		r := builder.NewRegionBuilder().AsInactive().MustBuild()
		actual := r.Eligibility(region.Party{Size: 1}, region.SmokingAllowed)
		require.NotNil(t, actual)
		assert.Equal(t, region.ReasonInactive, actual.Code)
	})

	t.Run("capacity message names the limit", func(t *testing.T) {
		actual := byName["BAR"].Eligibility(region.Party{Size: 5}, region.SmokingExact)
		require.NotNil(t, actual)
		assert.Equal(t, "Bar can accommodate maximum 4 people per table. Your party size is 5.", actual.Message)
	})
}

func TestFilterEligible(t *testing.T) {
	regions := builder.DefaultRegions()

	actual := region.FilterEligible(regions, region.Party{Size: 4, Children: 1}, region.SmokingExact)
	names := make([]string, len(actual))
	for i, r := range actual {
		names[i] = r.Name()
	}
	assert.Equal(t, []string{"MAIN_HALL", "RIVERSIDE"}, names)

	assert.Empty(t, region.FilterEligible(regions, region.Party{Size: 13}, region.SmokingExact))
}

func TestParseSmokingPolicy(t *testing.T) {
	p, err := region.ParseSmokingPolicy(" Allowed ")
	require.NoError(t, err)
	assert.Equal(t, region.SmokingAllowed, p)

	_, err = region.ParseSmokingPolicy("sometimes")
	assert.ErrorIs(t, err, region.ErrUnknownSmokingPolicy)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRegionBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
