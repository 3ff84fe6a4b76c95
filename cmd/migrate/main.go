package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bburrets/mdf-contract-management/internal/config"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/migration"
	"github.com/bburrets/mdf-contract-management/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	dir        = flag.String("dir", "", "Directory of migration files, overrides migrations.dir")
	status     = flag.Bool("status", false, "Print executed and pending migrations without applying anything")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadMigrateConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx := context.Background()

	err = logger.Initialize(logger.Config{
		Service:         "mdf-ledger-migrate",
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	db, err := store.Connect(ctx, cfg.Database, store.DEFAULT_CONNECT_RETRY)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	source := cfg.Migrations.Dir
	if *dir != "" {
		source = *dir
	}
	runner := migration.NewRunner(store.NewPGStore(db, store.WithAcquireTimeout(cfg.Database.AcquireTimeout)), migration.NewSource(source))

	if *status {
		st, err := runner.Status(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to read migration status", zap.Error(err))
		}
		for _, m := range st.Executed {
			fmt.Printf("executed  %s  %s\n", m.ExecutedAt.UTC().Format(time.RFC3339), m.Filename)
		}
		for _, filename := range st.Pending {
			fmt.Printf("pending   %s\n", filename)
		}
		if len(st.Pending) > 0 {
			os.Exit(2)
		}
		return
	}

	applied, err := runner.Run(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.Int("applied", applied))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	logger.InfoCtx(ctx, "Migrations complete", zap.Int("applied", applied))
}
