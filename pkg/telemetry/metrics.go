package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperations counts store calls by operation and outcome
	// (ok | invalid_input | not_found | already_exists).
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskhive",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Total store operations, labelled by operation and outcome.",
	}, []string{"op", "outcome"})

	// StoreTasks tracks the current number of tasks held in memory.
	StoreTasks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "taskhive",
		Subsystem: "store",
		Name:      "tasks",
		Help:      "Tasks currently held in the store.",
	})

	// HTTPRequestDuration observes request latency per method and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taskhive",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request handling time in seconds.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "status"})
)
