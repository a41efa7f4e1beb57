package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RequiredEnvVars have no usable default
var RequiredEnvVars = []string{
	EnvAPIKey,
}

// Variables parsed as integers or durations. A malformed value would otherwise fall back to its default silently.
var (
	intEnvVars = []string{
		EnvPort, EnvDBMaxConns, EnvLedgerCacheSize, EnvMaxRequestBytes,
		EnvObservedAttendances, EnvAttendancesPerPoint, EnvFullTrialPenalty, EnvHalfTrialPenalty,
		EnvRequiredDonationCopper,
	}
	durationEnvVars = []string{
		EnvDBMaxConnIdleTime, EnvDBMaxConnLifetime, EnvLedgerCacheTTL,
	}
)

const (
	minAPIKeyLength = 32
	// A cached ledger older than this may still credit a donation from a month that has since rolled over
	maxLedgerCacheTTL = 24 * time.Hour
)

// EnvReport is the outcome of inspecting the process environment
type EnvReport struct {
	Missing   []string
	Malformed []string
	Warnings  []string
}

// Err combines missing and malformed variables into one error, or nil
func (r EnvReport) Err() error {
	var parts []string
	if len(r.Missing) > 0 {
		parts = append(parts, "missing required environment variables: "+strings.Join(r.Missing, ", "))
	}
	if len(r.Malformed) > 0 {
		parts = append(parts, "malformed environment variables: "+strings.Join(r.Malformed, ", "))
	}
	if len(parts) == 0 {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

// InspectEnv checks required, numeric and risky variables using lookup
func InspectEnv(lookup func(string) (string, bool)) EnvReport {
	var r EnvReport

	for _, key := range RequiredEnvVars {
		if v, ok := lookup(key); !ok || v == "" {
			r.Missing = append(r.Missing, key)
		}
	}

	for _, key := range intEnvVars {
		if v, ok := lookup(key); ok && v != "" {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				r.Malformed = append(r.Malformed, key)
			}
		}
	}
	for _, key := range durationEnvVars {
		if v, ok := lookup(key); ok && v != "" {
			if _, err := time.ParseDuration(v); err != nil {
				r.Malformed = append(r.Malformed, key)
			}
		}
	}

	if v, ok := lookup(EnvAPIKey); ok && v != "" && len(v) < minAPIKeyLength {
		r.Warnings = append(r.Warnings, fmt.Sprintf("API_KEY is shorter than %d characters - generate one with: openssl rand -hex 32", minAPIKeyLength))
	}
	if v, _ := lookup(EnvRequiredDonationCopper); v == "0" {
		r.Warnings = append(r.Warnings, "REQUIRED_DONATION_COPPER is 0 - every character earns the donation bonus")
	}
	if v, _ := lookup(EnvLedgerCacheTTL); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil && ttl > maxLedgerCacheTTL {
			r.Warnings = append(r.Warnings, "LEDGER_CACHE_TTL is over 24h - donation bonuses may lag a month rollover")
		}
	}
	if v, _ := lookup(EnvBracketsSchemaPath); v != "" {
		r.Warnings = append(r.Warnings, "BRACKETS_SCHEMA_PATH overrides the schema compiled into the binary")
	}

	return r
}

// ValidateEnvWithWarnings inspects the process environment. Warnings are returned
// even when validation fails so they can be logged alongside the error.
func ValidateEnvWithWarnings() ([]string, error) {
	r := InspectEnv(os.LookupEnv)
	return r.Warnings, r.Err()
}
