package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "episodic_generations_total",
			Help: "Total number of generation requests by serving provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	ProviderFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "episodic_provider_fallbacks_total",
			Help: "Total number of cross-provider fallback attempts",
		},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "episodic_generation_duration_seconds",
			Help:    "End-to-end generation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"provider"},
	)

	ImageCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "episodic_image_cache_lookups_total",
			Help: "Image cache lookups by result (hit, tier_hit, miss)",
		},
		[]string{"result"},
	)
)
