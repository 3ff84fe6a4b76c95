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
	"github.com/bburrets/mdf-contract-management/internal/api/middleware"
	"github.com/bburrets/mdf-contract-management/internal/api/server"
	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/config"
	"github.com/bburrets/mdf-contract-management/internal/ledger"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/migration"
	"github.com/bburrets/mdf-contract-management/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:         "mdf-ledger-api",
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "mdf-ledger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting MDF ledger API")

	// Connect to database
	db, err := store.Connect(ctx, cfg.Database, store.DEFAULT_CONNECT_RETRY)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		zap.Bool("read_replica", cfg.Database.HasReadReplica()),
	)

	// Initialize store
	dataStore := store.NewPGStore(db, store.WithAcquireTimeout(cfg.Database.AcquireTimeout))

	// Apply pending migrations before serving
	migrations := migration.NewRunner(dataStore, migration.NewSource(cfg.Migrations.Dir))
	if cfg.Migrations.AutoRun {
		applied, err := migrations.Run(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err), zap.Int("applied", applied))
		}
		logger.InfoCtx(ctx, "Migrations applied", zap.Int("applied", applied))
	}

	// Initialize ledger
	clock := adapter.NewClock()
	codec := adapter.NewJSON()
	recorder := audit.NewRecorder(dataStore, clock, codec)
	svc := ledger.New(dataStore, recorder, clock, codec)

	if cfg.Auth.JWTPublicKey == "" && len(cfg.Auth.APIKeys) == 0 {
		logger.WarnCtx(ctx, "No JWT public key or API keys configured, every API request will be rejected")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, svc, migrations)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
