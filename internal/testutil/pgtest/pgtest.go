// Package pgtest provides a PostgreSQL database with the ledger schema for integration tests.
//
// The database is a testcontainers PostgreSQL container, or an external database when
// TEST_DB_HOST is set (for CI or local development).
package pgtest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bburrets/mdf-contract-management/db"
)

// Database is a migrated test database
type Database struct {
	DB        *gorm.DB
	DSN       string
	container *postgres.PostgresContainer
}

// Start connects to the test database and applies the embedded migrations.
// The returned Database must be closed with Terminate.
func Start(ctx context.Context) (*Database, error) {
	dsn, container, err := connectionString(ctx)
	if err != nil {
		return nil, err
	}

	d := &Database{DSN: dsn, container: container}

	d.DB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		d.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applySchema(d.DB); err != nil {
		d.Terminate(ctx)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return d, nil
}

// Terminate closes the connection pool and stops the container, if one was started
func (d *Database) Terminate(ctx context.Context) {
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if d.container != nil {
		if err := d.container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}
}

// Tx begins a transaction that is rolled back when the test finishes.
// Everything written through the returned handle is invisible to other tests.
func (d *Database) Tx(t *testing.T) *gorm.DB {
	t.Helper()

	tx := d.DB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return tx
}

// SeedStyle inserts a style into the catalog through db
func SeedStyle(t *testing.T, db *gorm.DB, styleNumber, season, businessLine string) {
	t.Helper()

	err := db.Exec(`INSERT INTO styles (style_number, item_number, item_desc, season, business_line)
		VALUES (?, ?, ?, ?, ?) ON CONFLICT (style_number) DO NOTHING`,
		styleNumber, "ITEM-"+styleNumber, "Description of "+styleNumber, season, businessLine).Error
	require.NoError(t, err)
}

// SeedSpend books spent against an allocation, as the spend tracking process would
func SeedSpend(t *testing.T, db *gorm.DB, allocationID int64, spent string) {
	t.Helper()

	err := db.Exec(`INSERT INTO allocation_spend (allocation_id, spent_amount) VALUES (?, ?::numeric)
		ON CONFLICT (allocation_id) DO UPDATE SET spent_amount = EXCLUDED.spent_amount, updated_at = now()`,
		allocationID, spent).Error
	require.NoError(t, err)
}

func connectionString(ctx context.Context) (string, *postgres.PostgresContainer, error) {
	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost != "" {
		dbPort := envOr("TEST_DB_PORT", "5432")
		dbUser := envOr("TEST_DB_USER", "postgres")
		dbPassword := envOr("TEST_DB_PASSWORD", "postgres")
		dbName := envOr("TEST_DB_NAME", "test_db")

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName), nil, nil
	}

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return "", nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	fmt.Printf("Started PostgreSQL container\n")
	return dsn, container, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// applySchema executes every embedded migration in filename order.
// schema_migrations is left untouched so the migration runner can be tested from scratch.
func applySchema(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	names, err := fs.Glob(db.Migrations, path.Join(db.MigrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(db.Migrations, name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := sqlDB.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", name, err)
		}
	}

	return nil
}
