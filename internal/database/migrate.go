package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Elite747/ValhallaLootList-sub000/migrations"
)

// Migrate applies every pending embedded migration and returns the resulting schema version
func Migrate(ctx context.Context, connString string) (int64, error) {
	db, err := sql.Open(migrationDriver, connString)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationDB, err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	defer provider.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadSchemaVersion, err)
	}
	if len(results) == 0 {
		slog.Default().Info(LogMsgSchemaUpToDate, "version", version)
	}
	return version, nil
}
