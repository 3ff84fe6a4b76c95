package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/bburrets/mdf-contract-management/internal/config"
	"github.com/bburrets/mdf-contract-management/internal/logger"
)

// DEFAULT_CONNECT_RETRY is how long Connect keeps retrying an unreachable database
const DEFAULT_CONNECT_RETRY = time.Minute

// Connect opens the primary database, registers the read replica when one is configured
// and applies the pool settings. Unreachable databases are retried with exponential backoff
// for up to retryFor.
func Connect(ctx context.Context, cfg config.DatabaseConfig, retryFor time.Duration) (*gorm.DB, error) {
	if retryFor <= 0 {
		retryFor = DEFAULT_CONNECT_RETRY
	}

	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var db *gorm.DB
	operation := func() error {
		opened, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
		if err != nil {
			logger.WarnCtx(ctx, "Database not reachable, retrying", zap.Error(err))
			return err
		}

		sqlDB, err := opened.DB()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to get underlying sql.DB: %w", err))
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			logger.WarnCtx(ctx, "Database ping failed, retrying", zap.Error(err))
			return err
		}

		db = opened
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = retryFor
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.HasReadReplica() {
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.ReadDSN())},
			Policy:   dbresolver.RandomPolicy{},
		}).
			SetMaxOpenConns(cfg.MaxOpenConns).
			SetMaxIdleConns(cfg.MaxIdleConns).
			SetConnMaxLifetime(cfg.ConnMaxLifetime).
			SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
		if err := db.Use(resolver); err != nil {
			return nil, fmt.Errorf("failed to register read replica: %w", err)
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("read_host", cfg.ReadHost))
	}

	if err := ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		return nil, err
	}

	return db, nil
}
