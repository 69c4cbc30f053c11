package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/HabitInventory_Go/docs"
	"github.com/osse101/HabitInventory_Go/internal/catalog"
	"github.com/osse101/HabitInventory_Go/internal/config"
	"github.com/osse101/HabitInventory_Go/internal/database"
	"github.com/osse101/HabitInventory_Go/internal/database/postgres"
	"github.com/osse101/HabitInventory_Go/internal/inventory"
	"github.com/osse101/HabitInventory_Go/internal/server"
)

const (
	shutdownTimeout = 15 * time.Second
	startupTimeout  = 60 * time.Second
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = time.Hour
)

// @title Habit Inventory API
// @version 1.0
// @description Decodes and stores habit-game user inventories.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Load reads .env, so validation runs after it
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if err := database.Migrate(startupCtx, pool); err != nil {
		return err
	}

	catalogPath, err := catalog.Fetch(startupCtx, cfg.CatalogSource, cfg.CatalogDir)
	if err != nil {
		return err
	}
	eggs, err := catalog.LoadFile(catalog.NewLoader(), catalogPath)
	if err != nil {
		return err
	}

	svc := inventory.NewService(
		postgres.NewInventoryRepository(pool),
		eggs,
		inventory.CacheConfig{Size: cfg.SnapshotCacheSize, TTL: cfg.SnapshotCacheTTL},
	)

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxPayloadBytes: cfg.MaxPayloadBytes,
		ServiceName:     cfg.ServiceName,
		Version:         cfg.Version,
	}, server.Deps{
		DB:        pool,
		Inventory: svc,
		Catalog:   eggs,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
