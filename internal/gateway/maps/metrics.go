package maps

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OracleRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "distance_oracle_retries_total",
			Help: "Total number of distance oracle retry attempts",
		},
		[]string{"method", "status"},
	)

	OracleRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "distance_oracle_request_duration_seconds",
			Help:    "Duration of distance oracle requests including retries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "status"},
	)
)
