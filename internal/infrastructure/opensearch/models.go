// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"encoding/json"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
)

// Config represents OpenSearch configuration.
type Config struct {
	URL   string `json:"url"`
	Index string `json:"index"`
	// PageTokenSecret encrypts deep-pagination continuation tokens.
	// Nil disables token generation.
	PageTokenSecret *[32]byte `json:"-"`
}

// SearchResponse is the backend search response reduced to what the
// searcher consumes.
type SearchResponse struct {
	Hits         Hits                 `json:"hits"`
	Aggregations model.AggregationSet `json:"aggregations"`
}

// Hits represents the hits section of the search response.
type Hits struct {
	Total Total `json:"total"`
	Hits  []Hit `json:"hits"`
}

// Total represents the total number of hits.
type Total struct {
	Value int `json:"value"`
}

// Hit is a single search result hit.
type Hit struct {
	ID     string          `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
	Sort   any             `json:"sort,omitempty"`
}

// queryParams feeds the product query template.
type queryParams struct {
	PageSize     int
	From         int
	Phrase       string
	TaxonCode    string
	SearchAfter  string
	SortBy       string
	SortOrder    string
	Aggregations string
}
