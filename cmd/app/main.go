package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Elite747/ValhallaLootList-sub000/docs"
	"github.com/Elite747/ValhallaLootList-sub000/internal/bootstrap"
	"github.com/Elite747/ValhallaLootList-sub000/internal/config"
	"github.com/Elite747/ValhallaLootList-sub000/internal/database"
	"github.com/Elite747/ValhallaLootList-sub000/internal/server"
)

const shutdownTimeout = 15 * time.Second

// @title Valhalla Loot List API
// @version 1.0
// @description Loot list editing, priority scoring and drop allocation for a raiding guild.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgEnvWarning, "warning", w)
	}
	if err != nil {
		slog.Error(bootstrap.LogMsgEnvInvalid, "error", err)
		os.Exit(1)
	}

	slog.Info(bootstrap.LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)
	slog.Debug(bootstrap.LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName)

	if err := run(cfg); err != nil {
		slog.Error("Service exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := bootstrap.LoadBrackets(cfg)
	if err != nil {
		return err
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool, cfg.Priority)
	services, err := bootstrap.InitializeServices(cfg, repos, catalog)
	if err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
		Version:         cfg.Version,
	}, dbPool, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		dbPool.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, DBPool: dbPool})
	return nil
}
