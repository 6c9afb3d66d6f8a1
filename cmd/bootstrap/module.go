package bootstrap

import (
	"venue-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.UseCaseModule,
	components.NotifyModule,
	components.ScheduleModule,
	components.HandlerModule,
)
