package api

import (
	"net/http"

	reqdto "venue-reservation/internal/handler/dto/request"
	resdto "venue-reservation/internal/handler/dto/response"
	"venue-reservation/internal/handler/httperr"
	"venue-reservation/internal/handler/middleware"
	"venue-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HoldHandler struct {
	cmds usecase.HoldCommands
}

func NewHoldHandler(cmds usecase.HoldCommands) *HoldHandler {
	return &HoldHandler{cmds: cmds}
}

// @Summary Acquire hold
// @Description Hold one table in a region for the caller's session
// @Tags holds
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param request body reqdto.AcquireHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/holds [post]
func (h *HoldHandler) Acquire(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "Unauthorized", nil)
		return
	}
	var req reqdto.AcquireHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AcquireHold(c.Request.Context(), req.ToInput(sessionID))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHoldResult(result))
}

// @Summary Release holds
// @Description Release every hold owned by the caller's session
// @Tags holds
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/holds [delete]
func (h *HoldHandler) Release(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "Unauthorized", nil)
		return
	}
	n, err := h.cmds.Release(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseResponse{Released: n})
}
