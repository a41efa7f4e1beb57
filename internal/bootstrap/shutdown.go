package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Elite747/ValhallaLootList-sub000/internal/database"
)

// Stoppable is anything that drains in-flight work on shutdown
type Stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stoppable
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server first so no new work arrives,
// then closes the database pool once in-flight requests have drained.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
