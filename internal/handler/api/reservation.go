package api

import (
	"net/http"
	"strings"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	reqdto "venue-reservation/internal/handler/dto/request"
	resdto "venue-reservation/internal/handler/dto/response"
	"venue-reservation/internal/handler/httperr"
	"venue-reservation/internal/handler/middleware"
	"venue-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds usecase.ReservationCommands
	q    usecase.ReservationQueries
	grid *timegrid.Grid
}

func NewReservationHandler(cmds usecase.ReservationCommands, q usecase.ReservationQueries, policy *usecase.BookingPolicy) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, grid: policy.Grid}
}

// @Summary Confirm reservation
// @Description Convert the caller's hold into a confirmed reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param request body reqdto.ConfirmReservationRequest true "Confirmation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "Unauthorized", nil)
		return
	}
	var req reqdto.ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Confirm(c.Request.Context(), req.ToInput(sessionID))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(res))
}

// @Summary List reservations
// @Description List confirmed reservations, optionally for one customer email
// @Tags reservations
// @Produce json
// @Param email query string false "Customer email"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var (
		list []*reservation.Reservation
		err  error
	)
	if _, present := c.GetQuery("email"); present || strings.TrimSpace(q.Email) != "" {
		list, err = h.q.ListConfirmedByEmail(c.Request.Context(), q.Email)
	} else {
		list, err = h.q.ListConfirmed(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	out := make([]resdto.ReservationResponse, len(list))
	for i, r := range list {
		out[i] = h.toResponse(r)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	res, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(res))
}

// @Summary Cancel reservation
// @Description Delete a reservation and free its table
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) toResponse(r *reservation.Reservation) resdto.ReservationResponse {
	end, err := h.grid.EndOf(r.Slot())
	if err != nil {
		end = ""
	}
	return resdto.FromReservation(r, end)
}
