//go:build unit

package uow_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"venue-reservation/internal/infra/uow"
	"venue-reservation/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUoW_Reads_SharedAcrossGoroutines(t *testing.T) {
	u := uow.NewPostgresUoW(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	repos := u.Reads()

	const workers = 8
	reservations := make([]shared.ReservationRepository, workers)
	regions := make([]shared.RegionRepository, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reservations[i] = repos.Reservations()
			regions[i] = repos.Regions()
		}()
	}
	wg.Wait()

	require.NotNil(t, reservations[0])
	require.NotNil(t, regions[0])
	for i := 1; i < workers; i++ {
		assert.Same(t, reservations[0], reservations[i])
		assert.Same(t, regions[0], regions[i])
	}
}
