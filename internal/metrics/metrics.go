package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the ops site
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Allocation business metrics
	FlightsCreatedTotal     prometheus.CounterVec
	FlightJoinsTotal        prometheus.Counter
	FlightLeavesTotal       prometheus.Counter
	AllocationFailuresTotal prometheus.CounterVec
	MissionSaveConflicts    prometheus.Counter
	RolesLookupFallbacks    prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ajac_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ajac_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ajac_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ajac_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ajac_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Allocation business metrics
		FlightsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ajac_flights_created_total",
				Help: "Flights created, by origin (form or curated slot)",
			},
			[]string{"origin"},
		),
		FlightJoinsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ajac_flight_joins_total",
				Help: "Wingman joins across all missions",
			},
		),
		FlightLeavesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ajac_flight_leaves_total",
				Help: "Pilots leaving flights across all missions",
			},
		),
		AllocationFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ajac_allocation_failures_total",
				Help: "Failed flight operations by error kind",
			},
			[]string{"kind"},
		),
		MissionSaveConflicts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ajac_mission_save_conflicts_total",
				Help: "Optimistic-concurrency conflicts on mission document saves",
			},
		),
		RolesLookupFallbacks: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ajac_roles_lookup_fallbacks_total",
				Help: "Roles lookups that degraded to the empty-roles fallback",
			},
		),
	}
}
