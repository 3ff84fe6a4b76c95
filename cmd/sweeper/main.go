package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bburrets/mdf-contract-management/internal/adapter"
	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/config"
	"github.com/bburrets/mdf-contract-management/internal/ledger"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single sweep and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:         "mdf-ledger-sweeper",
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "mdf-ledger-sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting allocation drift sweeper")

	// Connect to database
	db, err := store.Connect(ctx, cfg.Database, store.DEFAULT_CONNECT_RETRY)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and ledger
	dataStore := store.NewPGStore(db, store.WithAcquireTimeout(cfg.Database.AcquireTimeout))
	clock := adapter.NewClock()
	codec := adapter.NewJSON()
	svc := ledger.New(dataStore, audit.NewRecorder(dataStore, clock, codec), clock, codec)

	drift := sweeper.NewDriftSweeper(sweeper.DriftSweeperConfig{
		Interval:       cfg.Sweeper.Interval,
		BatchSize:      cfg.Sweeper.BatchSize,
		WorkerPoolSize: cfg.Sweeper.Worker.WorkerPoolSize,
		QueueSize:      cfg.Sweeper.Worker.WorkerQueueSize,
	}, svc, clock)
	var driftSweeper sweeper.Sweeper = drift

	if *once {
		report, err := drift.Sweep(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Sweep failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Sweep finished",
			zap.Int64("checked", report.Checked),
			zap.Int("drifted", len(report.Drifted)),
		)
		return
	}

	logger.InfoCtx(ctx, "Initialized sweeper", zap.String("name", driftSweeper.Name()))

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := driftSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Give the sweeper time to finish the current page
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := driftSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
