package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"venue-reservation/internal/domain/timegrid"
	reqdto "venue-reservation/internal/handler/dto/request"
	resdto "venue-reservation/internal/handler/dto/response"
	"venue-reservation/internal/handler/httperr"
	"venue-reservation/internal/infra/notify"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

const streamHeartbeat = 15 * time.Second

var errNoSession = errors.New("session missing from request context")

// LiveFeed hands out observers of occupancy changes.
type LiveFeed interface {
	Connect() *notify.Observer
}

type AvailabilityHandler struct {
	q         usecase.AvailabilityQueries
	feed      LiveFeed
	grid      *timegrid.Grid
	clock     clock.Clock
	heartbeat time.Duration
}

type AvailabilityOption func(*AvailabilityHandler)

// WithStreamHeartbeat overrides the interval between stream heartbeats.
func WithStreamHeartbeat(d time.Duration) AvailabilityOption {
	return func(h *AvailabilityHandler) {
		if d > 0 {
			h.heartbeat = d
		}
	}
}

func NewAvailabilityHandler(q usecase.AvailabilityQueries, feed LiveFeed, policy *usecase.BookingPolicy, clk clock.Clock, opts ...AvailabilityOption) *AvailabilityHandler {
	h := &AvailabilityHandler{
		q:         q,
		feed:      feed,
		grid:      policy.Grid,
		clock:     clk,
		heartbeat: streamHeartbeat,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// @Summary Available slots
// @Description List every start time of a date with the regions that still have a free table
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability/slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	var q reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	slots, err := h.q.ListAvailableSlots(c.Request.Context(), q.Date)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotAvailability(slots))
}

// @Summary Check slot
// @Description Check whether a region can seat a party at a date and start time
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param timeSlot query string true "Start time (HH:MM)"
// @Param regionId query string true "Region ID"
// @Param partySize query int true "Party size"
// @Param childrenCount query int false "Children in the party"
// @Param smoking query bool false "Smoking requested"
// @Success 200 {object} resdto.SlotCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability/check [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var q reqdto.CheckSlotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	query, err := q.ToQuery()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	check, err := h.q.CheckSlot(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotCheck(check))
}

// @Summary Suggest alternatives
// @Description Evaluate every eligible region over the surrounding days and slots
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param timeSlot query string true "Start time (HH:MM)"
// @Param partySize query int true "Party size"
// @Param childrenCount query int false "Children in the party"
// @Param smoking query bool false "Smoking requested"
// @Success 200 {array} resdto.SlotCheckResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability/alternatives [get]
func (h *AvailabilityHandler) Alternatives(c *gin.Context) {
	var q reqdto.AlternativesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	query, err := q.ToQuery()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	checks, err := h.q.SuggestAlternatives(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotChecks(checks))
}

// @Summary Stream availability changes
// @Description Server-Sent Events of availability changes for a date, plus lock expiry broadcasts
// @Tags availability
// @Produce text/event-stream
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} httperr.Response
// @Router /api/availability/stream [get]
func (h *AvailabilityHandler) Stream(c *gin.Context) {
	var q reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, err := h.grid.ParseDate(q.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	observer := h.feed.Connect()
	defer observer.Close()
	observer.Subscribe(date.String())

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	c.SSEvent("subscribed", gin.H{"date": date.String()})
	c.Stream(func(_ io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case e, ok := <-observer.Events():
			if !ok {
				return false
			}
			c.SSEvent(string(e.Type), e)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", gin.H{"at": h.clock.Now().UTC()})
			return true
		}
	})
}
