package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/Elite747/ValhallaLootList-sub000/internal/allocation"
	"github.com/Elite747/ValhallaLootList-sub000/internal/bracket"
	"github.com/Elite747/ValhallaLootList-sub000/internal/config"
	"github.com/Elite747/ValhallaLootList-sub000/internal/lootlist"
	"github.com/Elite747/ValhallaLootList-sub000/internal/priority"
	"github.com/Elite747/ValhallaLootList-sub000/internal/server"
)

// LoadBrackets reads and validates the bracket configuration.
// A malformed file is a configuration error and should stop startup.
func LoadBrackets(cfg *config.Config) (*bracket.Catalog, error) {
	catalog, err := bracket.LoadFile(cfg.BracketsConfigPath, cfg.BracketsSchemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load brackets config: %w", err)
	}

	slog.Info(LogMsgBracketsLoaded, "path", cfg.BracketsConfigPath, "phases", catalog.Phases())
	return catalog, nil
}

// InitializeServices builds the application services on top of the repositories
func InitializeServices(cfg *config.Config, repos *Repositories, catalog *bracket.Catalog) (server.Services, error) {
	calculator, err := priority.NewCalculator(cfg.Priority)
	if err != nil {
		return server.Services{}, fmt.Errorf("failed to create priority calculator: %w", err)
	}

	prio := priority.NewService(repos.Priority, calculator,
		priority.WithLedgerCache(cfg.LedgerCacheSize, cfg.LedgerCacheTTL))

	svc := server.Services{
		LootList: lootlist.NewService(repos.LootList, catalog),
		Priority: prio,
		Drop:     allocation.NewService(repos.Drop, prio),
	}

	slog.Info(LogMsgServicesReady,
		"observed_attendances", cfg.Priority.ObservedAttendances,
		"ledger_cache_size", cfg.LedgerCacheSize)
	return svc, nil
}
