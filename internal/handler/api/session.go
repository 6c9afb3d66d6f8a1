package api

import (
	"net/http"

	resdto "venue-reservation/internal/handler/dto/response"
	"venue-reservation/internal/handler/httperr"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/pkg/cookie"
	"venue-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds usecase.SessionCommands
	cfg  config.SessionConfig
}

func NewSessionHandler(cmds usecase.SessionCommands, cfg config.Config) *SessionHandler {
	return &SessionHandler{cmds: cmds, cfg: cfg.Session}
}

// @Summary Start session
// @Description Issue an anonymous session token. Holds are owned by the session.
// @Tags sessions
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 500 {object} httperr.Response
// @Router /api/sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	s, err := h.cmds.Start(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	cookie.SetSessionCookie(c, h.cfg, s.Token, h.cfg.Duration)
	c.JSON(http.StatusCreated, resdto.FromSession(s))
}
