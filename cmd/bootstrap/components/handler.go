package components

import (
	"venue-reservation/internal/handler"
	"venue-reservation/internal/handler/api"
	"venue-reservation/internal/handler/middleware"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRegionHandler,
		NewAvailabilityHandler,
		api.NewSessionHandler,
		api.NewHoldHandler,
		api.NewReservationHandler,
		middleware.NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAvailabilityHandler(q usecase.AvailabilityQueries, feed api.LiveFeed, policy *usecase.BookingPolicy, clk clock.Clock) *api.AvailabilityHandler {
	return api.NewAvailabilityHandler(q, feed, policy, clk)
}

func NewHandlers(
	region *api.RegionHandler,
	availability *api.AvailabilityHandler,
	session *api.SessionHandler,
	hold *api.HoldHandler,
	reservation *api.ReservationHandler,
) handler.Handlers {
	return handler.Handlers{
		Region:       region,
		Availability: availability,
		Session:      session,
		Hold:         hold,
		Reservation:  reservation,
	}
}
