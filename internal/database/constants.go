package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConnections is used when the configured maximum is not positive
	DefaultMaxConnections = 10

	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString   = "failed to parse connection string"
	ErrMsgFailedToCreatePool        = "failed to create connection pool"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToOpenMigrationDB   = "failed to open migration connection"
	ErrMsgFailedToCreateMigrator    = "failed to create migration provider"
	ErrMsgFailedToApplyMigrations   = "failed to apply migrations"
	ErrMsgFailedToReadSchemaVersion = "failed to read schema version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgSchemaUpToDate                  = "Database schema is up to date"
)

// Migration driver name registered by pgx/v5/stdlib
const migrationDriver = "pgx"
