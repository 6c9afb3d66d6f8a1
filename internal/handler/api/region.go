package api

import (
	"net/http"

	reqdto "venue-reservation/internal/handler/dto/request"
	resdto "venue-reservation/internal/handler/dto/response"
	"venue-reservation/internal/handler/httperr"
	"venue-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegionHandler struct {
	q usecase.RegionQueries
}

func NewRegionHandler(q usecase.RegionQueries) *RegionHandler {
	return &RegionHandler{q: q}
}

// @Summary List regions
// @Description List active seating regions ordered by name
// @Tags regions
// @Produce json
// @Success 200 {array} resdto.RegionResponse
// @Failure 500 {object} httperr.Response
// @Router /api/regions [get]
func (h *RegionHandler) List(c *gin.Context) {
	regions, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRegions(regions))
}

// @Summary Get region
// @Description Get an active region by ID
// @Tags regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} resdto.RegionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/regions/{id} [get]
func (h *RegionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	r, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRegion(r))
}

// @Summary Eligible regions
// @Description List active regions that can seat the given party
// @Tags regions
// @Produce json
// @Param partySize query int true "Party size"
// @Param childrenCount query int false "Children in the party"
// @Param smoking query bool false "Smoking requested"
// @Success 200 {array} resdto.RegionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/regions/eligible [get]
func (h *RegionHandler) Eligible(c *gin.Context) {
	var q reqdto.EligibleRegionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	regions, err := h.q.FilterEligible(c.Request.Context(), q.PartySize, q.ChildrenCount, q.WantsSmoking)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRegions(regions))
}
