package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Loot metric names
const (
	MetricNameDropsAwarded         = "loot_drops_awarded_total"
	MetricNameDropsCleared         = "loot_drops_cleared_total"
	MetricNameDropPassesRecorded   = "loot_drop_passes_recorded_total"
	MetricNameEntryRejections      = "loot_entry_rejections_total"
	MetricNameListTransitions      = "loot_list_transitions_total"
	MetricNameLedgerCacheLookups   = "loot_ledger_cache_hits_total"
	MetricNameStandingsComputation = "loot_standings_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Loot metric help text
const (
	HelpTextDropsAwarded         = "Total number of drops awarded to a winner"
	HelpTextDropsCleared         = "Total number of drop awards cleared"
	HelpTextDropPassesRecorded   = "Total number of pass records written for losing candidates"
	HelpTextEntryRejections      = "Total number of loot list entry edits rejected"
	HelpTextListTransitions      = "Total number of loot list status transitions"
	HelpTextLedgerCacheLookups   = "Donation ledger cache lookups by result"
	HelpTextStandingsComputation = "Time spent scoring every candidate for a drop"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelResult = "result"
)

// Label values
const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	// UnmatchedRoute labels requests that did not resolve to a registered route
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StandingsBuckets cover in-process scoring, which is dominated by ledger loads
var StandingsBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1}
