package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proxypool",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "proxypool",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Refresh cycle counter
	RefreshCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proxypool",
			Subsystem: "manager",
			Name:      "refresh_cycles_total",
			Help:      "Total refresh cycles by trigger and outcome",
		},
		[]string{"trigger", "status"},
	)

	// Refresh cycle duration
	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "proxypool",
			Subsystem: "manager",
			Name:      "refresh_duration_seconds",
			Help:      "Refresh cycle duration in seconds",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	// Candidates fetched per source
	CandidatesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proxypool",
			Subsystem: "manager",
			Name:      "candidates_fetched_total",
			Help:      "Total candidate endpoints fetched per source",
		},
		[]string{"source"},
	)

	// Validation outcomes
	ValidationChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proxypool",
			Subsystem: "manager",
			Name:      "validation_checks_total",
			Help:      "Validation outcomes per refresh cycle",
		},
		[]string{"result"},
	)

	// Current pool size
	PoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "proxypool",
			Subsystem: "manager",
			Name:      "pool_size",
			Help:      "Number of currently valid proxies",
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordRefresh records one refresh cycle
func RecordRefresh(trigger, status string, durationSec float64) {
	RefreshCyclesTotal.WithLabelValues(trigger, status).Inc()
	RefreshDuration.Observe(durationSec)
}

// RecordCandidates records fetched candidates for a source
func RecordCandidates(source string, count int) {
	CandidatesFetchedTotal.WithLabelValues(source).Add(float64(count))
}

// RecordValidation records validation outcomes
func RecordValidation(valid, discarded int) {
	ValidationChecksTotal.WithLabelValues("valid").Add(float64(valid))
	ValidationChecksTotal.WithLabelValues("discarded").Add(float64(discarded))
}

// SetPoolSize updates the pool size gauge
func SetPoolSize(size int) {
	PoolSize.Set(float64(size))
}
