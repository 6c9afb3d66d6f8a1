package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-reservation/internal/handler/api"
	"venue-reservation/internal/handler/middleware"
	"venue-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Region       *api.RegionHandler
	Availability *api.AvailabilityHandler
	Session      *api.SessionHandler
	Hold         *api.HoldHandler
	Reservation  *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireSession := sessionMiddleware.RequireSession()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/regions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Region.List},
			{Method: http.MethodGet, Path: "/eligible", Handler: h.Region.Eligible},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Region.Get},
		})

		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "/slots", Handler: h.Availability.Slots},
			{Method: http.MethodGet, Path: "/check", Handler: h.Availability.Check},
			{Method: http.MethodGet, Path: "/alternatives", Handler: h.Availability.Alternatives},
			{Method: http.MethodGet, Path: "/stream", Handler: h.Availability.Stream},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/sessions", Handler: h.Session.Start},
		})

		addRoutes(apiGroup.Group("/holds"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Hold.Acquire, Mw: []gin.HandlerFunc{requireSession}},
			{Method: http.MethodDelete, Path: "", Handler: h.Hold.Release, Mw: []gin.HandlerFunc{requireSession}},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Confirm, Mw: []gin.HandlerFunc{requireSession}},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
