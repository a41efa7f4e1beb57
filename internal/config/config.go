package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/Elite747/ValhallaLootList-sub000/internal/database"
	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port         int    `validate:"min=1,max=65535"`
	LogLevel     string `validate:"oneof=debug info warn warning error"`
	LogFormat    string `validate:"oneof=json text"`
	LogAddSource bool
	Environment  string `validate:"required"`
	ServiceName  string `validate:"required"`
	Version      string

	DBUser            string `validate:"required"`
	DBPassword        string
	DBHost            string `validate:"required"`
	DBPort            string `validate:"required,numeric"`
	DBName            string `validate:"required"`
	DBSSLMode         string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns        int    `validate:"gt=0"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey          string `validate:"required"` // API key for authentication
	MaxRequestBytes int64  `validate:"gt=0"`
	// TrustedProxies are remote addresses whose X-Forwarded-For header is believed
	TrustedProxies []string `validate:"dive,ip"`

	BracketsConfigPath string `validate:"required"`
	// BracketsSchemaPath is empty to use the schema compiled into the binary
	BracketsSchemaPath string

	Priority        domain.PriorityScope `validate:"-"`
	LedgerCacheSize int                  `validate:"gt=0"`
	LedgerCacheTTL  time.Duration        `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	defaults := domain.DefaultPriorityScope()
	cfg := &Config{
		LogLevel:     strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:    strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogAddSource: getEnvAsBool(EnvLogAddSource, false),
		Environment:  getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:  getEnv(EnvServiceName, DefaultServiceName),
		Version:      getEnv(EnvVersion, DefaultVersion),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBSSLMode:         getEnv(EnvDBSSLMode, DefaultDBSSLMode),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		APIKey:          getEnv(EnvAPIKey, ""),
		MaxRequestBytes: getEnvAsInt64(EnvMaxRequestBytes, DefaultMaxRequestBytes),
		TrustedProxies:  getEnvAsList(EnvTrustedProxies),

		BracketsConfigPath: getEnv(EnvBracketsConfigPath, ConfigPathBrackets),
		BracketsSchemaPath: getEnv(EnvBracketsSchemaPath, ""),

		Priority: domain.PriorityScope{
			ObservedAttendances:    getEnvAsInt(EnvObservedAttendances, defaults.ObservedAttendances),
			AttendancesPerPoint:    getEnvAsInt(EnvAttendancesPerPoint, defaults.AttendancesPerPoint),
			FullTrialPenalty:       getEnvAsInt(EnvFullTrialPenalty, defaults.FullTrialPenalty),
			HalfTrialPenalty:       getEnvAsInt(EnvHalfTrialPenalty, defaults.HalfTrialPenalty),
			RequiredDonationCopper: getEnvAsInt64(EnvRequiredDonationCopper, defaults.RequiredDonationCopper),
		},
		LedgerCacheSize: getEnvAsInt(EnvLedgerCacheSize, DefaultLedgerCacheSize),
		LedgerCacheTTL:  getEnvAsDuration(EnvLedgerCacheTTL, DefaultLedgerCacheTTL),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints, including the priority scope
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %s", describe(err))
	}
	if err := v.Struct(c.Priority); err != nil {
		return &domain.ConfigurationError{Reason: "priority scope: " + describe(err)}
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// LoggerConfig returns the logger settings derived from this config
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.LogAddSource)
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on absence or parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string such as "10m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
