//go:build e2e

package reservation_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	reqdto "venue-reservation/internal/handler/dto/request"
	resdto "venue-reservation/internal/handler/dto/response"
	"venue-reservation/internal/pkg/cookie"
	"venue-reservation/tests/common/dbtest"
	"venue-reservation/tests/common/httptest"
	"venue-reservation/tests/common/sessiontest"
	"venue-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingDate = "2025-07-25"
	bookingSlot = "19:00"
)

type ReservationE2ESuite struct {
	e2e.SharedSuite
}

func TestReservationE2ESuite(t *testing.T) {
	suite.Run(t, new(ReservationE2ESuite))
}

func (s *ReservationE2ESuite) hold(token string, regionID uuid.UUID) int {
	body := reqdto.AcquireHoldRequest{Date: bookingDate, TimeSlot: bookingSlot, RegionID: regionID}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/holds", body, token).Code
}

func confirmBody(regionID uuid.UUID) reqdto.ConfirmReservationRequest {
	return reqdto.ConfirmReservationRequest{
		Date:          bookingDate,
		TimeSlot:      bookingSlot,
		RegionID:      regionID,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "Ada@Example.com",
		CustomerPhone: "+44 20-7946-0958",
		PartySize:     4,
	}
}

func (s *ReservationE2ESuite) TestFullFlow() {
	t := s.T()
	bar := dbtest.RegionID(t, s.DB, "BAR")
	session := sessiontest.StartSession(t, s.Router)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/holds",
		reqdto.AcquireHoldRequest{Date: bookingDate, TimeSlot: bookingSlot, RegionID: bar}, session.Token)
	var hold resdto.HoldResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &hold)
	httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	assert.Equal(t, bar, hold.RegionID)
	assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, "HELD"))

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", confirmBody(bar), session.Token)
	var confirmed resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &confirmed)
	assert.Equal(t, hold.HoldID, confirmed.ID)
	assert.Equal(t, "CONFIRMED", confirmed.Status)
	assert.Equal(t, "21:00", confirmed.EndTime)
	require.NotNil(t, confirmed.Customer)
	assert.Equal(t, "ada@example.com", confirmed.Customer.Email)
	assert.Equal(t, 0, dbtest.CountReservations(t, s.DB, "HELD"))
	assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, "CONFIRMED"))

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations?email=ADA@example.com", nil, "")
	var listed []resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, confirmed.ID, listed[0].ID)

	path := fmt.Sprintf("/api/reservations/%s", confirmed.ID)
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, path, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
	httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	assert.Equal(t, 0, dbtest.CountReservations(t, s.DB, ""))
}

func (s *ReservationE2ESuite) TestConcurrentHoldsNeverOverbook() {
	t := s.T()
	bar := dbtest.RegionID(t, s.DB, "BAR")

	const contenders = 10
	tokens := make([]string, contenders)
	for i := range tokens {
		tokens[i] = sessiontest.StartSession(t, s.Router).Token
	}

	codes := make([]int, contenders)
	var wg sync.WaitGroup
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = s.hold(tokens[i], bar)
		}(i)
	}
	wg.Wait()

	var created, conflicts int
	for _, c := range codes {
		switch c {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 4, created, "BAR has four tables")
	assert.Equal(t, contenders-4, conflicts)
	assert.Equal(t, 4, dbtest.CountReservations(t, s.DB, "HELD"))
}

func (s *ReservationE2ESuite) TestConfirmWithoutOwnHoldIsRejected() {
	t := s.T()
	bar := dbtest.RegionID(t, s.DB, "BAR")
	owner := sessiontest.StartSession(t, s.Router)
	other := sessiontest.StartSession(t, s.Router)

	require.Equal(t, http.StatusCreated, s.hold(owner.Token, bar))

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", confirmBody(bar), other.Token)
	httptest.AssertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, "HELD"))
}

func (s *ReservationE2ESuite) TestExpiredHoldsAreSwept() {
	t := s.T()
	bar := dbtest.RegionID(t, s.DB, "BAR")
	for range 2 {
		require.Equal(t, http.StatusCreated, s.hold(sessiontest.StartSession(t, s.Router).Token, bar))
	}

	assert.EqualValues(t, 2, dbtest.ExpireHolds(t, s.DB))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	reaped, err := s.Sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reaped)
	assert.Equal(t, 0, dbtest.CountReservations(t, s.DB, ""))

	reaped, err = s.Sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, reaped)
}

func (s *ReservationE2ESuite) TestSchemaRejectsMixedRow() {
	t := s.T()
	bar := dbtest.RegionID(t, s.DB, "BAR")

	_, err := s.DB.Exec(context.Background(), `
		INSERT INTO reservations (id, date, time_slot, region_id, status, hold_token, hold_expires_at, customer_name)
		VALUES ($1, $2, $3, $4, 'HELD', 'token', now() + interval '5 minutes', 'Someone')`,
		uuid.New(), bookingDate, bookingSlot, bar)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr), "expected a postgres error, got %v", err)
	assert.Equal(t, "23514", pgErr.Code)
	assert.Equal(t, "reservations_phase_check", pgErr.ConstraintName)
}

func (s *ReservationE2ESuite) TestSessionTokens() {
	s.Run("session cookie alone is accepted", func() {
		t := s.T()
		bar := dbtest.RegionID(t, s.DB, "BAR")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/sessions", nil, "")
		require.Equal(t, http.StatusCreated, w.Code)
		c := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, c)

		body := reqdto.AcquireHoldRequest{Date: bookingDate, TimeSlot: bookingSlot, RegionID: bar}
		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, "/api/holds", body, []*http.Cookie{c}, "")
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("expired token is rejected", func() {
		t := s.T()
		bar := dbtest.RegionID(t, s.DB, "BAR")
		token := sessiontest.NewJWTHelper(s.Config.Session).CreateExpiredToken(t)

		body := reqdto.AcquireHoldRequest{Date: bookingDate, TimeSlot: bookingSlot, RegionID: bar}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/holds", body, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired session token")
		assert.Equal(t, 0, dbtest.CountReservations(t, s.DB, ""))
	})

	s.Run("token signed with the service secret needs no prior session call", func() {
		t := s.T()
		bar := dbtest.RegionID(t, s.DB, "BAR")
		token, _ := sessiontest.NewJWTHelper(s.Config.Session).GenerateToken(t)

		body := reqdto.AcquireHoldRequest{Date: bookingDate, TimeSlot: bookingSlot, RegionID: bar}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/holds", body, token)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/holds", nil, token)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
