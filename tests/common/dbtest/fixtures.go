//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedReferenceData inserts the station/charger reference rows tests build on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO stations (name) VALUES
		    ('Default Station'),
		    ('Test Station')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// Four chargers at the default station, two at the test station.
	_, err = pool.Exec(ctx, `
		INSERT INTO chargers (station_id)
		SELECT s.id FROM stations s, generate_series(1, 4) WHERE s.name = 'Default Station'
		  AND (SELECT count(*) FROM chargers c WHERE c.station_id = s.id) = 0;
	`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO chargers (station_id)
		SELECT s.id FROM stations s, generate_series(1, 2) WHERE s.name = 'Test Station'
		  AND (SELECT count(*) FROM chargers c WHERE c.station_id = s.id) = 0;
	`)
	return err
}

// DefaultStationID resolves the seeded default station.
func DefaultStationID(t *testing.T, db DBLike) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), "SELECT id FROM stations WHERE name = 'Default Station'").Scan(&id)
	require.NoError(t, err)
	return id
}

// StationChargerIDs returns the charger ids of a station in ascending order.
func StationChargerIDs(t *testing.T, db DBLike, stationID int64) []int64 {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT id FROM chargers WHERE station_id = $1 ORDER BY id", stationID)
	require.NoError(t, err)
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
