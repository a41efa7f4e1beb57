package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Drop Metrics
var (
	DropsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDropsAwarded,
			Help: HelpTextDropsAwarded,
		},
	)

	DropsCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDropsCleared,
			Help: HelpTextDropsCleared,
		},
	)

	DropPassesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDropPassesRecorded,
			Help: HelpTextDropPassesRecorded,
		},
	)

	StandingsDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameStandingsComputation,
			Help:    HelpTextStandingsComputation,
			Buckets: StandingsBuckets,
		},
	)
)

// Loot List Metrics
var (
	EntryRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEntryRejections,
			Help: HelpTextEntryRejections,
		},
		[]string{LabelKind},
	)

	ListTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameListTransitions,
			Help: HelpTextListTransitions,
		},
		[]string{LabelStatus},
	)
)

// Priority Metrics
var (
	LedgerCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerCacheLookups,
			Help: HelpTextLedgerCacheLookups,
		},
		[]string{LabelResult},
	)
)
