package config

import "time"

// Configuration file paths
const (
	ConfigPathBrackets = "configs/brackets.json"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "valhalla-loot"
	DefaultVersion           = "dev"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "valhalla"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultLedgerCacheSize   = 512
	DefaultLedgerCacheTTL    = 10 * time.Minute
	DefaultMaxRequestBytes   = 1 << 20
)

// Environment variable names
const (
	EnvPort                   = "PORT"
	EnvLogLevel               = "LOG_LEVEL"
	EnvLogFormat              = "LOG_FORMAT"
	EnvLogAddSource           = "LOG_ADD_SOURCE"
	EnvEnvironment            = "ENVIRONMENT"
	EnvServiceName            = "SERVICE_NAME"
	EnvVersion                = "VERSION"
	EnvDBUser                 = "DB_USER"
	EnvDBPassword             = "DB_PASSWORD"
	EnvDBHost                 = "DB_HOST"
	EnvDBPort                 = "DB_PORT"
	EnvDBName                 = "DB_NAME"
	EnvDBSSLMode              = "DB_SSLMODE"
	EnvDBMaxConns             = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime      = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime      = "DB_MAX_CONN_LIFETIME"
	EnvAPIKey                 = "API_KEY"
	EnvBracketsConfigPath     = "BRACKETS_CONFIG_PATH"
	EnvBracketsSchemaPath     = "BRACKETS_SCHEMA_PATH"
	EnvObservedAttendances    = "OBSERVED_ATTENDANCES"
	EnvAttendancesPerPoint    = "ATTENDANCES_PER_POINT"
	EnvFullTrialPenalty       = "FULL_TRIAL_PENALTY"
	EnvHalfTrialPenalty       = "HALF_TRIAL_PENALTY"
	EnvRequiredDonationCopper = "REQUIRED_DONATION_COPPER"
	EnvLedgerCacheSize        = "LEDGER_CACHE_SIZE"
	EnvLedgerCacheTTL         = "LEDGER_CACHE_TTL"
	EnvMaxRequestBytes        = "MAX_REQUEST_BYTES"
	EnvTrustedProxies         = "TRUSTED_PROXIES"
)
