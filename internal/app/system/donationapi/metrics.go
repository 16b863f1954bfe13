// internal/app/system/donationapi/metrics.go
package donationapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "givingback",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Backend API calls by operation and outcome",
		},
		[]string{"op", "outcome"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "givingback",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Backend API call latency by operation",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)
