package postgres_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/gh215tth/QLTV-dart/pkg/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestDB_DSN(t *testing.T) {
	t.Parallel()
	cfg := postgres.DB{
		Host:     "db",
		Port:     "5433",
		Username: "library",
		Password: "p@ss word",
		NameDB:   "library",
		SSLMode:  "disable",
	}
	require.Equal(t, "postgres://library:p%40ss%20word@db:5433/library?sslmode=disable", cfg.DSN())
}

func TestMigrate_UnreachableDatabase(t *testing.T) {
	t.Parallel()
	cfg := postgres.DB{Host: "127.0.0.1", Port: "1", Username: "postgres", NameDB: "library", SSLMode: "disable"}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	require.NoError(t, err)

	// pgxpool connects lazily, so the failure surfaces inside goose.
	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrations := fstest.MapFS{
		"00001_init.sql": {Data: []byte("-- +goose Up\nCREATE TABLE t (id int);\n")},
	}
	err = postgres.Migrate(pool, migrations)
	require.Error(t, err)
	require.Contains(t, err.Error(), "goose.Up")
}
