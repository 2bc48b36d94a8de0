package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the screening engine. A nil
// *Metrics records nothing, so tests can skip wiring entirely.
type Metrics struct {
	checksTotal      *prometheus.CounterVec
	checkOutcomes    *prometheus.CounterVec
	datasetRefreshes *prometheus.CounterVec
	cacheServes      *prometheus.CounterVec
	checkDuration    prometheus.Histogram
}

// New creates and registers all screening metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		checksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regguard_sanctions_checks_total",
			Help: "Total sanctions checks by matching mode.",
		}, []string{"mode"}),
		checkOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regguard_sanctions_check_outcomes_total",
			Help: "Check outcomes: match, no_match, unavailable.",
		}, []string{"outcome"}),
		datasetRefreshes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regguard_sdn_refreshes_total",
			Help: "Dataset refresh attempts by result.",
		}, []string{"result"}),
		cacheServes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regguard_sdn_cache_serves_total",
			Help: "Dataset serves by cache state: fresh, refreshed, stale.",
		}, []string{"state"}),
		checkDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "regguard_sanctions_check_duration_seconds",
			Help:    "End-to-end duration of a sanctions check.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Check counts one screening request in the given mode.
func (m *Metrics) Check(mode string) {
	if m == nil {
		return
	}
	m.checksTotal.WithLabelValues(mode).Inc()
}

// Outcome counts the result of a completed check.
func (m *Metrics) Outcome(outcome string) {
	if m == nil {
		return
	}
	m.checkOutcomes.WithLabelValues(outcome).Inc()
}

// DatasetRefresh counts one refresh attempt with result "success" or "failure".
func (m *Metrics) DatasetRefresh(result string) {
	if m == nil {
		return
	}
	m.datasetRefreshes.WithLabelValues(result).Inc()
}

// CacheServe counts a dataset serve with state "fresh", "refreshed", or "stale".
func (m *Metrics) CacheServe(state string) {
	if m == nil {
		return
	}
	m.cacheServes.WithLabelValues(state).Inc()
}

// ObserveCheckDuration records a completed check's wall time in seconds.
func (m *Metrics) ObserveCheckDuration(seconds float64) {
	if m == nil {
		return
	}
	m.checkDuration.Observe(seconds)
}
