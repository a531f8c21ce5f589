// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts catalog searches by outcome.
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_search_requests_total",
		Help: "Catalog searches by outcome.",
	}, []string{"status"})

	// SearchDuration observes end-to-end search latency, facet
	// extraction included.
	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_search_duration_seconds",
		Help:    "End-to-end catalog search latency.",
		Buckets: prometheus.DefBuckets,
	})

	// CacheLookups counts result-cache lookups by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_search_cache_lookups_total",
		Help: "Search result cache lookups by result.",
	}, []string{"result"})

	// FiltersExtracted observes the number of facets produced per search.
	FiltersExtracted = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_search_filters_extracted",
		Help:    "Facets produced per search.",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
)
