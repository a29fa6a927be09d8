package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/primezone/internal/buildinfo"
	"github.com/dmitrijs2005/primezone/internal/cli"
	"github.com/dmitrijs2005/primezone/internal/config"
	"github.com/dmitrijs2005/primezone/internal/dashboard"
	"github.com/dmitrijs2005/primezone/internal/logging"
	"github.com/dmitrijs2005/primezone/internal/services"
	"github.com/dmitrijs2005/primezone/internal/storage"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()

	logger, closeLog, err := logging.New(cfg.LogBackend, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("logger init error: %w", err)
	}
	defer closeLog()

	repo, closer, err := storage.Open(ctx, cfg.StorageDriver, cfg.StorageDSN)
	if err != nil {
		logger.Error(ctx, "storage init error", "driver", cfg.StorageDriver, "error", err)
		return fmt.Errorf("storage init error: %w", err)
	}
	defer closer.Close()

	sessions := services.NewSessionService(repo, logger.With("component", "session"), cfg.SyncDelay)
	habitStore := services.NewHabitService(repo, logger.With("component", "habits"))

	ctrl := dashboard.New(sessions, habitStore, logger.With("component", "dashboard"),
		dashboard.WithLocale(cfg.Locale))
	defer ctrl.Close()

	app := cli.NewApp(cfg, ctrl, logger.With("component", "cli"))
	return app.Run(ctx)
}
