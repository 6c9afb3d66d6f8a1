//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/handler/api"
	resdto "venue-reservation/internal/handler/dto/response"
	"venue-reservation/internal/infra/notify"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/pkg/errs"
	"venue-reservation/internal/usecase"
	"venue-reservation/tests/common/builder"
	"venue-reservation/tests/common/httptest"
	"venue-reservation/tests/common/sse"
	usecasemock "venue-reservation/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *usecasemock.MockAvailabilityQueries
	hub         *notify.Hub
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = usecasemock.NewMockAvailabilityQueries(s.mockCtrl)
	s.hub = notify.NewHub(8, clock.NewMockClock(fixedNow), slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := api.NewAvailabilityHandler(s.mockQueries, s.hub, testPolicy(), clock.NewMockClock(fixedNow),
		api.WithStreamHeartbeat(20*time.Millisecond))

	s.router.GET("/api/availability/slots", h.Slots)
	s.router.GET("/api/availability/check", h.Check)
	s.router.GET("/api/availability/alternatives", h.Alternatives)
	s.router.GET("/api/availability/stream", h.Stream)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.Require().NoError(s.hub.Close(context.Background()))
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestSlots() {
	hall := mainHall()

	s.Run("lists each slot with its free regions", func() {
		s.mockQueries.EXPECT().ListAvailableSlots(gomock.Any(), "2025-07-25").Return([]usecase.SlotAvailability{
			{Slot: "18:00", Regions: []usecase.RegionAvailability{{Region: hall, AvailableTables: 2}}},
			{Slot: "18:30", Regions: []usecase.RegionAvailability{}},
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability/slots?date=2025-07-25", nil, "")

		var body []resdto.SlotAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("18:00", body[0].TimeSlot)
		s.Require().Len(body[0].AvailableRegions, 1)
		s.Equal(hall.ID(), body[0].AvailableRegions[0].Region.ID)
		s.Equal(2, body[0].AvailableRegions[0].AvailableTables)
		s.Empty(body[1].AvailableRegions)
	})

	s.Run("date is required", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("date outside the booking window", func() {
		s.mockQueries.EXPECT().ListAvailableSlots(gomock.Any(), "2025-08-30").
			Return(nil, errs.Mark(errs.New("date 2025-08-30 is outside the booking window"), errs.ErrInvalidInput))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability/slots?date=2025-08-30", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func (s *AvailabilityHandlerTestSuite) TestCheck() {
	bar := builder.NewRegionBuilder().WithName("BAR", "Bar").WithTables(4, 4).WithChildren(false).MustBuild()
	base := "/api/availability/check?date=2025-07-25&timeSlot=19:00&regionId=" + bar.ID().String()

	s.Run("available", func() {
		s.mockQueries.EXPECT().CheckSlot(gomock.Any(), usecase.SlotQuery{
			Date: "2025-07-25", Slot: "19:00", RegionID: bar.ID(), PartySize: 2,
		}).Return(&usecase.SlotCheck{
			Date: mustDate("2025-07-25"), Slot: "19:00", Region: bar, Available: true, AvailableTables: 3,
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"&partySize=2", nil, "")

		var body resdto.SlotCheckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal(3, body.AvailableTables)
		s.Nil(body.Reason)
	})

	s.Run("ineligible party is reported, not failed", func() {
		reason := &region.Ineligibility{Code: region.ReasonChildrenNotAllowed, Message: "Bar does not allow children"}
		s.mockQueries.EXPECT().CheckSlot(gomock.Any(), usecase.SlotQuery{
			Date: "2025-07-25", Slot: "19:00", RegionID: bar.ID(), PartySize: 3, ChildrenCount: 1,
		}).Return(&usecase.SlotCheck{
			Date: mustDate("2025-07-25"), Slot: "19:00", Region: bar, Reason: reason,
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"&partySize=3&childrenCount=1", nil, "")

		var body resdto.SlotCheckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.False(body.Available)
		s.Require().NotNil(body.Reason)
		s.Equal("CHILDREN_NOT_ALLOWED", body.Reason.Code)
		s.Equal("Bar does not allow children", body.Reason.Message)
	})

	s.Run("malformed region id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability/check?date=2025-07-25&timeSlot=19:00&regionId=bar&partySize=2", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unknown region", func() {
		s.mockQueries.EXPECT().CheckSlot(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("region not found"), errs.ErrNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"&partySize=2", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *AvailabilityHandlerTestSuite) TestAlternatives() {
	hall := mainHall()
	date := mustDate("2025-07-26")
	s.mockQueries.EXPECT().SuggestAlternatives(gomock.Any(), usecase.AlternativesQuery{
		Date: "2025-07-26", Slot: "19:00", PartySize: 4, ChildrenCount: 2,
	}).Return([]usecase.SlotCheck{
		{Date: date.AddDays(-1), Slot: "18:00", Region: hall, Available: true, AvailableTables: 2},
		{Date: date, Slot: "19:00", Region: hall, Reason: &region.Ineligibility{Code: "NO_TABLES", Message: "no tables left"}},
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		"/api/availability/alternatives?date=2025-07-26&timeSlot=19:00&partySize=4&childrenCount=2", nil, "")

	var body []resdto.SlotCheckResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)

	type row struct {
		Date      string
		Slot      string
		Available bool
	}
	got := make([]row, len(body))
	for i, c := range body {
		got[i] = row{Date: c.Date, Slot: c.TimeSlot, Available: c.Available}
	}
	want := []row{
		{Date: "2025-07-25", Slot: "18:00", Available: true},
		{Date: "2025-07-26", Slot: "19:00", Available: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.Failf("alternatives mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *AvailabilityHandlerTestSuite) TestStream() {
	srv := nethttptest.NewServer(s.router)
	defer srv.Close()

	s.Run("rejects dates outside the booking window", func() {
		resp, err := http.Get(srv.URL + "/api/availability/stream?date=2026-01-01")
		s.Require().NoError(err)
		defer resp.Body.Close()
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("delivers the date's changes and lock expiries", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/availability/stream?date=2025-07-25", nil)
		s.Require().NoError(err)
		resp, err := http.DefaultClient.Do(req)
		s.Require().NoError(err)
		defer resp.Body.Close()
		s.Equal("text/event-stream", resp.Header.Get("Content-Type"))

		events := sse.NewReader(resp.Body)
		s.Equal("subscribed", events.Next(s.T(), 2*time.Second).Name)

		s.Eventually(func() bool {
			_, inRoom := s.hub.ObserverCount(notify.RoomFor("2025-07-25"))
			return inRoom == 1
		}, 2*time.Second, 10*time.Millisecond)

		regionID := uuid.New()
		s.hub.AvailabilityChanged(ctx, reservation.SlotKey{Date: mustDate("2025-07-26"), Slot: "19:00", RegionID: regionID})
		s.hub.AvailabilityChanged(ctx, reservation.SlotKey{Date: mustDate("2025-07-25"), Slot: timegrid.Slot("19:00"), RegionID: regionID})
		s.hub.LockExpired(ctx, "session-1")

		changed := events.Next(s.T(), 2*time.Second)
		s.Equal(string(notify.EventAvailabilityChanged), changed.Name)
		var e notify.Event
		changed.Decode(s.T(), &e)
		s.Equal("2025-07-25", e.Date)
		s.Equal("19:00", e.TimeSlot)
		s.Equal(regionID.String(), e.RegionID)

		expired := events.Next(s.T(), 2*time.Second)
		s.Equal(string(notify.EventLockExpired), expired.Name)
		expired.Decode(s.T(), &e)
		s.Equal("session-1", e.SessionID)

		cancel()
		s.Eventually(func() bool {
			connected, _ := s.hub.ObserverCount("")
			return connected == 0
		}, 2*time.Second, 10*time.Millisecond)
	})
	s.Run("heartbeats carry the injected clock", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/availability/stream?date=2025-07-25", nil)
		s.Require().NoError(err)
		resp, err := http.DefaultClient.Do(req)
		s.Require().NoError(err)
		defer resp.Body.Close()

		beat := sse.NewReader(resp.Body).NextNamed(s.T(), "heartbeat", 2*time.Second)
		var payload struct {
			At time.Time `json:"at"`
		}
		beat.Decode(s.T(), &payload)
		s.True(fixedNow.Equal(payload.At), "heartbeat at %s", payload.At)
	})
}
