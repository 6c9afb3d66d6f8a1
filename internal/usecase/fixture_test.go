//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/infra/memstore"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/usecase"
	"venue-reservation/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

var startOfService = time.Date(2025, 7, 24, 17, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu      sync.Mutex
	changed []reservation.SlotKey
	expired []string
}

func (n *recordingNotifier) AvailabilityChanged(_ context.Context, key reservation.SlotKey) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, key)
}

func (n *recordingNotifier) LockExpired(_ context.Context, token string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.expired = append(n.expired, token)
}

func (n *recordingNotifier) Changed() []reservation.SlotKey {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]reservation.SlotKey(nil), n.changed...)
}

func (n *recordingNotifier) Expired() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.expired...)
}

// bookingSuite wires every usecase to one memory store seeded with the
// default floor plan plus a single-table region.
type bookingSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	notifier *recordingNotifier
	policy   *usecase.BookingPolicy
	regions  map[string]*region.Region

	regionQueries usecase.RegionQueries
	availability  usecase.AvailabilityQueries
	holds         usecase.HoldCommands
	commands      usecase.ReservationCommands
	queries       usecase.ReservationQueries
	sweeper       usecase.Sweeper
}

func (s *bookingSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.clock = clock.NewMockClock(startOfService)
	s.notifier = &recordingNotifier{}

	policy, err := usecase.NewBookingPolicy(config.NewTestConfig().Booking)
	s.Require().NoError(err)
	s.policy = policy

	s.regions = map[string]*region.Region{}
	all := append(builder.DefaultRegions(),
		builder.NewRegionBuilder().WithName("SOLO", "Solo Table").WithTables(1, 4).WithChildren(true).MustBuild(),
		builder.NewRegionBuilder().WithName("CLOSED", "Closed Terrace").WithTables(3, 6).AsInactive().MustBuild(),
	)
	for _, r := range all {
		s.Require().NoError(s.store.Reads().Regions().Upsert(s.ctx, r))
		s.regions[r.Name()] = r
	}

	s.regionQueries = usecase.NewRegionQueries(s.store, policy)
	s.availability = usecase.NewAvailabilityQueries(s.store, policy, s.clock)
	s.holds = usecase.NewHoldCommands(s.store, policy, s.notifier, s.clock)
	s.commands = usecase.NewReservationCommands(s.store, policy, s.notifier, s.clock)
	s.queries = usecase.NewReservationQueries(s.store)
	s.sweeper = usecase.NewSweeper(s.store, s.notifier, s.clock)
}

func (s *bookingSuite) hold(date, slot, regionName, token string) (*usecase.HoldResult, error) {
	return s.holds.AcquireHold(s.ctx, usecase.AcquireHoldInput{
		Date:         date,
		Slot:         slot,
		RegionID:     s.regions[regionName].ID(),
		SessionToken: token,
	})
}

func (s *bookingSuite) mustHold(date, slot, regionName, token string) *usecase.HoldResult {
	res, err := s.hold(date, slot, regionName, token)
	s.Require().NoError(err)
	return res
}

func (s *bookingSuite) confirm(date, slot, regionName, token string, c *builder.CustomerBuilder) (*reservation.Reservation, error) {
	return s.commands.Confirm(s.ctx, usecase.ConfirmInput{
		Date:         date,
		Slot:         slot,
		RegionID:     s.regions[regionName].ID(),
		SessionToken: token,
		Customer:     c.Params,
	})
}

func newCustomer() *builder.CustomerBuilder {
	return builder.NewCustomerBuilder()
}
