// Package metrics exposes Prometheus collectors for the search service.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	searchesTotal           *prometheus.CounterVec
	searchDurationSeconds   prometheus.Histogram
	adapterRunsTotal        *prometheus.CounterVec
	adapterRecipesTotal     *prometheus.CounterVec
	adapterDurationSeconds  *prometheus.HistogramVec
	fetchDurationSeconds    *prometheus.HistogramVec
	circuitTransitionsTotal *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus collectors. Safe to call repeatedly.
func Init() {
	once.Do(func() {
		searchesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipescout_searches_total",
				Help: "Total searches served, labeled by result source and cache outcome.",
			},
			[]string{"source", "cache"},
		)

		searchDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recipescout_search_duration_seconds",
				Help:    "End-to-end search latency.",
				Buckets: []float64{0.05, 0.25, 1, 2.5, 5, 10, 20, 30},
			},
		)

		adapterRunsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipescout_adapter_runs_total",
				Help: "Adapter executions, labeled by site and outcome.",
			},
			[]string{"site", "outcome"},
		)

		adapterRecipesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipescout_adapter_recipes_total",
				Help: "Recipes yielded per adapter before aggregate filtering.",
			},
			[]string{"site"},
		)

		adapterDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipescout_adapter_duration_seconds",
				Help:    "Whole-adapter execution time, labeled by site.",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 15},
			},
			[]string{"site"},
		)

		fetchDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipescout_fetch_duration_seconds",
				Help:    "Single page fetch latencies, labeled by origin.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"origin"},
		)

		circuitTransitionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipescout_circuit_transitions_total",
				Help: "Circuit breaker transitions, labeled by origin and new state.",
			},
			[]string{"origin", "state"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveSearch records one completed search.
func ObserveSearch(source string, fromCache bool, duration time.Duration) {
	cache := "miss"
	if fromCache {
		cache = "hit"
	}
	searchesTotal.WithLabelValues(source, cache).Inc()
	searchDurationSeconds.Observe(duration.Seconds())
}

// ObserveAdapterRun records one adapter execution.
func ObserveAdapterRun(site, outcome string, recipes int, duration time.Duration) {
	adapterRunsTotal.WithLabelValues(site, outcome).Inc()
	if recipes > 0 {
		adapterRecipesTotal.WithLabelValues(site).Add(float64(recipes))
	}
	adapterDurationSeconds.WithLabelValues(site).Observe(duration.Seconds())
}

// ObserveFetch records one page fetch attempt against an origin.
func ObserveFetch(origin string, duration time.Duration) {
	fetchDurationSeconds.WithLabelValues(origin).Observe(duration.Seconds())
}

// ObserveCircuitTransition records a breaker state change.
func ObserveCircuitTransition(origin, state string) {
	circuitTransitionsTotal.WithLabelValues(origin, state).Inc()
}
