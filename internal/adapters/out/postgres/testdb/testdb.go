// Package testdb builds databases for repository and query tests: an
// in-memory sqlite database for fast tests and a postgres container migrated
// with the embedded schema for integration suites.
package testdb

import (
	"context"
	"testing"
	"time"

	"ordersvc/internal/adapters/out/postgres/claimrepo"
	"ordersvc/internal/adapters/out/postgres/migrations"
	"ordersvc/internal/adapters/out/postgres/orderdetailrepo"
	"ordersvc/internal/adapters/out/postgres/orderrepo"
	"ordersvc/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NopTracker discards tracked aggregates.
type NopTracker struct{}

func (NopTracker) TrackAggregate(kernel.ID, any) {}

// SQLite opens a private in-memory database with every table created.
// A single connection keeps the database alive for the whole test.
func SQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderdetailrepo.OrderDetailDTO{},
		&claimrepo.ClaimDTO{},
	))
	return db
}

// Postgres is a postgres container with the embedded migrations applied.
type Postgres struct {
	Container *postgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
}

func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	if err = migrations.Up(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, err
	}

	return &Postgres{Container: container, DSN: dsn, DB: db}, nil
}

// Truncate empties every table and resets the identifiers.
func (p *Postgres) Truncate() error {
	return p.DB.Exec("TRUNCATE TABLE claims, order_details, orders RESTART IDENTITY CASCADE").Error
}

func (p *Postgres) Terminate(ctx context.Context) error {
	if p == nil || p.Container == nil {
		return nil
	}
	return p.Container.Terminate(ctx)
}
