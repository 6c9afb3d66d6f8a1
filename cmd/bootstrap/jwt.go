package bootstrap

import (
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.Session.Duration <= 0 {
		panic("invalid SESSION_DURATION: must be positive")
	}
	return jwt.NewService(cfg.Session.Secret, cfg.Session.Duration, clk)
}
