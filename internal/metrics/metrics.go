// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerateTotal counts generation requests by outcome. For failures the
	// phase label names the generation stage that ran out of candidates.
	GenerateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "routegen_generate_total",
		Help: "Route generation requests by status and failing phase.",
	}, []string{"status", "phase"})

	// GenerateDuration observes wall time of generation requests.
	GenerateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "routegen_generate_duration_seconds",
		Help:    "Route generation duration.",
		Buckets: prometheus.DefBuckets,
	})
)
