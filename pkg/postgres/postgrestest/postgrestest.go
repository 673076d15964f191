// Package postgrestest opens a migrated scratch database for integration tests.
package postgrestest

import (
	"context"
	"io/fs"
	"os"
	"testing"

	"github.com/gh215tth/QLTV-dart/pkg/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DSNEnv = "LIBRARY_TEST_DSN"

// New connects to $LIBRARY_TEST_DSN, migrates it and empties the given tables.
// The test is skipped when the variable is unset.
func New(t testing.TB, migrations fs.FS, tables ...string) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", DSNEnv)
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(pool, migrations))
	for _, table := range tables {
		_, err = pool.Exec(ctx, "truncate table "+table+" restart identity cascade")
		require.NoError(t, err)
	}
	return pool
}
