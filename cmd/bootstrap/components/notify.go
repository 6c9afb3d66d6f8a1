package components

import (
	"context"
	"log/slog"

	"venue-reservation/internal/handler/api"
	"venue-reservation/internal/infra/notify"
	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewHub,
		func(h *notify.Hub) shared.ChangeNotifier { return h },
		func(h *notify.Hub) api.LiveFeed { return h },
	),
)

// NewHub builds the change hub with whichever relays are configured. A relay
// that cannot be reached at start-up is skipped, not fatal.
func NewHub(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) *notify.Hub {
	var relays []notify.Relay
	if cfg.Relay.RedisAddr != "" {
		client, err := notify.NewRedisClient(cfg.Relay.RedisAddr, cfg.Relay.RedisPassword)
		if err != nil {
			logger.Warn("Redis relay disabled", "addr", cfg.Relay.RedisAddr, "error", err.Error())
		} else {
			relays = append(relays, notify.NewRedisRelay(client, cfg.Relay.RedisPrefix))
		}
	}
	if len(cfg.Relay.KafkaBrokers) > 0 {
		relays = append(relays, notify.NewKafkaRelay(cfg.Relay.KafkaBrokers, cfg.Relay.KafkaTopic))
	}

	hub := notify.NewHub(cfg.Relay.ObserverQueue, clk, logger, notify.WithRelays(cfg.Relay.QueueSize, relays...))

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			hub.Start()
			logger.Info("Change hub started", "relays", len(relays))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return hub.Close(ctx)
		},
	})
	return hub
}
