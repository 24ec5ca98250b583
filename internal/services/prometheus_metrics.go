package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	searchesTotal       *prometheus.CounterVec
	searchDuration      prometheus.Histogram
	interpreterOutcomes *prometheus.CounterVec
	interpreterDuration prometheus.Histogram
	circuitBreakerState prometheus.Gauge
}

func NewPrometheusMetrics() SearchMetricsInterface {
	return &PrometheusMetrics{
		searchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_searches_total",
				Help: "Total number of transaction searches by mode",
			},
			[]string{"mode"},
		),
		searchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_search_duration_milliseconds",
				Help:    "Transaction search duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		interpreterOutcomes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "query_interpretation_total",
				Help: "Total number of query interpretation attempts by outcome",
			},
			[]string{"outcome"},
		),
		interpreterDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "query_interpretation_duration_milliseconds",
				Help:    "Query interpretation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		circuitBreakerState: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "interpreter_circuit_breaker_state",
				Help: "Interpreter circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

func (pm *PrometheusMetrics) ObserveSearch(mode string, duration time.Duration) {
	pm.searchesTotal.WithLabelValues(mode).Inc()
	pm.searchDuration.Observe(float64(duration.Milliseconds()))
}

func (pm *PrometheusMetrics) ObserveInterpretation(outcome string, duration time.Duration) {
	pm.interpreterOutcomes.WithLabelValues(outcome).Inc()
	pm.interpreterDuration.Observe(float64(duration.Milliseconds()))
}

func (pm *PrometheusMetrics) SetCircuitBreakerState(state float64) {
	pm.circuitBreakerState.Set(state)
}

// NopMetrics is a no-op recorder for tests and tooling
type NopMetrics struct{}

func (NopMetrics) ObserveSearch(string, time.Duration)         {}
func (NopMetrics) ObserveInterpretation(string, time.Duration) {}
func (NopMetrics) SetCircuitBreakerState(float64)              {}
