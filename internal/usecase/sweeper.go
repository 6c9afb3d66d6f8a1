package usecase

import (
	"context"
	"log/slog"

	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/usecase/shared"
)

type Sweeper interface {
	// Sweep deletes every hold that has expired and reports how many it
	// removed. Running it again without new expiries is a no-op.
	Sweep(ctx context.Context) (int, error)
}

type sweeperImpl struct {
	uow      shared.UnitOfWork
	notifier shared.ChangeNotifier
	clock    clock.Clock
}

func NewSweeper(uow shared.UnitOfWork, notifier shared.ChangeNotifier, clock clock.Clock) Sweeper {
	return &sweeperImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clock,
	}
}

func (s *sweeperImpl) Sweep(ctx context.Context) (int, error) {
	expired, err := s.uow.Reads().Reservations().DeleteExpiredHolds(ctx, s.clock.Now())
	if err != nil {
		return 0, storageFailure(err, "delete expired holds")
	}
	if len(expired) == 0 {
		return 0, nil
	}

	for _, r := range expired {
		s.notifier.AvailabilityChanged(ctx, r.Key())
		if h, ok := r.Hold(); ok && h.Token() != "" {
			s.notifier.LockExpired(ctx, h.Token())
		}
	}
	slog.Info("expired holds swept", "count", len(expired))
	return len(expired), nil
}
