// Package dbtest opens throwaway databases for repository and query tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// SQLite returns a migrated in-memory database private to t.
func SQLite(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := postgres.OpenDatabase(postgres.DatabaseConfig{
		Driver:     postgres.DriverSQLite,
		SQLitePath: fmt.Sprintf("%s?mode=memory&cache=shared", name),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, sqlErr := db.DB(); sqlErr == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Postgres starts a PostgreSQL container, migrates it and returns the connection
// together with a function that terminates the container.
func Postgres(ctx context.Context) (*gorm.DB, func(context.Context) error, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}
	terminate := func(ctx context.Context) error { return container.Terminate(ctx) }

	host, err := container.Host(ctx)
	if err != nil {
		return nil, terminate, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, terminate, err
	}

	db, err := postgres.OpenDatabase(postgres.DatabaseConfig{
		Driver:   postgres.DriverPostgres,
		Host:     host,
		Port:     port.Port(),
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		SSLMode:  "disable",
	}, nil)
	if err != nil {
		return nil, terminate, err
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, terminate, err
	}
	return db, terminate, nil
}
