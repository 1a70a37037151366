package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "personacast_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "personacast_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Rate limiter decisions made by the internal check endpoint
	RateLimitDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "personacast_rate_limit_decisions_total",
			Help: "Admit/deny decisions made by the rate limiter",
		},
		[]string{"decision"},
	)
)
