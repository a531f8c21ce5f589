// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package model

// SearchCriteria encapsulates all possible catalog search parameters.
type SearchCriteria struct {
	// Phrase is the free-text search phrase; supports typeahead.
	Phrase *string
	// TaxonCode narrows the search to a taxon subtree and sets the
	// browsing context for the taxonomy facet.
	TaxonCode *string
	// FacetFields are the filterable attribute field identifiers to
	// aggregate on, sourced from catalog configuration.
	FacetFields []string
	// SortBy field for results.
	SortBy string
	// SortOrder for results.
	SortOrder string
	// Page is the 1-based page number.
	Page int
	// PageSize is the number of products per page.
	PageSize int
	// PageToken is the opaque continuation token for deep pagination.
	PageToken *string
	// SearchAfter is the decoded continuation cursor.
	SearchAfter *string
}

// SearchResult is the raw outcome of one backend search: the hydrated
// documents of the current page in response order, the overall hit count,
// and the nested aggregation response.
type SearchResult struct {
	// Products of the current page, in backend relevance order.
	Products []Product
	// Total number of matching documents.
	Total int
	// Aggregations returned alongside the hits.
	Aggregations AggregationSet
	// PageToken for the next page, when more results may exist.
	PageToken *string
}

// ProductSearchResult is the consumer-facing outcome of a catalog search:
// the page of products plus the ordered facet list and paging information.
type ProductSearchResult struct {
	Products  []Product `json:"products"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	Pages     int       `json:"pages"`
	Filters   []Filter  `json:"filters"`
	PageToken *string   `json:"page_token,omitempty"`
}
