package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics records service-level operation metrics for the scoring
// engine. Services depend on the interface so tests can pass NoOpMetrics.
type EngineMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordMatchProcessed(ctx context.Context, seasonID string)
	RecordHandicapUpdated(ctx context.Context, seasonID string)
	RecordMatchDayLocked(ctx context.Context, seasonID string)
	RecordDBQueryDuration(ctx context.Context, duration time.Duration)
}

type prometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec

	matchesProcessed *prometheus.CounterVec
	handicapUpdates  *prometheus.CounterVec
	matchDaysLocked  *prometheus.CounterVec
	dbQueryDuration  prometheus.Histogram
}

// NewEngineMetrics registers the engine's collectors on the given registry.
func NewEngineMetrics(registry *prometheus.Registry) EngineMetrics {
	m := &prometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_engine_operation_attempts_total",
			Help: "Number of service operation attempts.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_engine_operation_successes_total",
			Help: "Number of service operations that succeeded.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_engine_operation_failures_total",
			Help: "Number of service operations that failed.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "league_engine_operation_duration_seconds",
			Help:    "Duration of service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		matchesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_engine_matches_processed_total",
			Help: "Number of matches fully processed.",
		}, []string{"season_id"}),
		handicapUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_engine_handicap_updates_total",
			Help: "Number of handicap records recomputed.",
		}, []string{"season_id"}),
		matchDaysLocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_engine_match_days_locked_total",
			Help: "Number of match days transitioned to locked.",
		}, []string{"season_id"}),
		dbQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "league_engine_db_query_duration_seconds",
			Help:    "Duration of database round trips.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		m.attempts, m.successes, m.failures, m.durations,
		m.matchesProcessed, m.handicapUpdates, m.matchDaysLocked,
		m.dbQueryDuration,
	)
	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.durations.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *prometheusMetrics) RecordMatchProcessed(_ context.Context, seasonID string) {
	m.matchesProcessed.WithLabelValues(seasonID).Inc()
}

func (m *prometheusMetrics) RecordHandicapUpdated(_ context.Context, seasonID string) {
	m.handicapUpdates.WithLabelValues(seasonID).Inc()
}

func (m *prometheusMetrics) RecordMatchDayLocked(_ context.Context, seasonID string) {
	m.matchDaysLocked.WithLabelValues(seasonID).Inc()
}

func (m *prometheusMetrics) RecordDBQueryDuration(_ context.Context, d time.Duration) {
	m.dbQueryDuration.Observe(d.Seconds())
}

// NoOpMetrics discards all measurements. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordMatchProcessed(context.Context, string)                  {}
func (NoOpMetrics) RecordHandicapUpdated(context.Context, string)                 {}
func (NoOpMetrics) RecordMatchDayLocked(context.Context, string)                  {}
func (NoOpMetrics) RecordDBQueryDuration(context.Context, time.Duration)          {}

var _ EngineMetrics = NoOpMetrics{}
