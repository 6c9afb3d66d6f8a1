//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"venue-reservation/internal/infra/repository"
	"venue-reservation/internal/infra/seed"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// RegionID looks up a seeded region by name.
func RegionID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM regions WHERE name = $1", name).Scan(&id)
	require.NoError(t, err, "region %s not seeded", name)
	return id
}

// CountReservations counts rows with status; an empty status counts all.
func CountReservations(t *testing.T, db DBLike, status string) int {
	t.Helper()

	var n int
	var err error
	if status == "" {
		err = db.QueryRow(context.Background(), "SELECT count(*) FROM reservations").Scan(&n)
	} else {
		err = db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE status = $1", status).Scan(&n)
	}
	require.NoError(t, err)
	return n
}

// ExpireHolds moves every hold's expiry into the past.
func ExpireHolds(t *testing.T, db DBLike) int64 {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE reservations SET hold_expires_at = now() - interval '1 second' WHERE status = 'HELD'")
	require.NoError(t, err)
	return tag.RowsAffected()
}

// inserts the default floor plan
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return seed.Regions(ctx, repository.NewRegionRepository(pool, logger), seed.DefaultRegions(), logger)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
