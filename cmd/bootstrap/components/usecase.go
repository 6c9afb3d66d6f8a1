package components

import (
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (*usecase.BookingPolicy, error) {
		return usecase.NewBookingPolicy(cfg.Booking)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewSessionCommands,
		usecase.NewHoldCommands,
		usecase.NewReservationCommands,
		usecase.NewSweeper,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		usecase.NewRegionQueries,
		usecase.NewAvailabilityQueries,
		usecase.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
