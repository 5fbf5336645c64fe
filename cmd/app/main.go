package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/allowance"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/boost"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/config"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/dig"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/event"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/inventory"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/loot"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/memory"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/profile"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/server"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/sse"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateEnv(cfg); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	store, err := storage.NewFileStore(cfg.DataDir, cfg.CacheSize, cfg.CacheTTL)
	if err != nil {
		slog.Error("Failed to open save store", "error", err)
		os.Exit(1)
	}

	eventBus := event.NewMemoryBus()

	lootTable, err := loot.LoadTable(config.ConfigPathLootTable)
	if err != nil {
		slog.Error("Failed to load loot table", "error", err)
		os.Exit(1)
	}
	boostTable, err := boost.LoadTable(config.ConfigPathBoosts)
	if err != nil {
		slog.Error("Failed to load boost table", "error", err)
		os.Exit(1)
	}
	boostLedger := boost.NewLedger(boostTable)

	memoryService, err := memory.NewService(store, eventBus, config.ConfigPathSeedMemories)
	if err != nil {
		slog.Error("Failed to initialize memory service", "error", err)
		os.Exit(1)
	}
	inventoryService, err := inventory.NewService(store, eventBus, memoryService, config.ConfigPathAchievements)
	if err != nil {
		slog.Error("Failed to initialize inventory service", "error", err)
		os.Exit(1)
	}
	allowanceService := allowance.NewService(store, eventBus)
	profileService := profile.NewService(store)

	digService := dig.NewService(memoryService, inventoryService, allowanceService, boostLedger, lootTable, eventBus, dig.Config{})

	resetWorker := worker.NewDailyResetWorker(allowanceService)
	resetWorker.Start()

	eventHub := sse.NewHub()
	eventHub.Start()
	sse.NewSubscriber(eventHub, eventBus).Subscribe()

	srv := server.NewServer(cfg.Port, cfg.CORSOrigin, store, digService, memoryService, inventoryService, allowanceService, profileService, eventHub)

	// Start the server in its own goroutine so we can watch for signals
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server stopped unexpectedly", "error", err)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	digService.Shutdown()
	eventHub.Stop()
	if err := resetWorker.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Daily reset worker shutdown incomplete", "error", err)
	}
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
