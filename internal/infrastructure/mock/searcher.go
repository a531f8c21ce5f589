// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
)

// ProductSearcher is an in-memory implementation of port.ProductSearcher
// used for tests and for running the service without a backend.
type ProductSearcher struct {
	products     []model.Product
	aggregations model.AggregationSet
	searchErr    error
	readyErr     error
}

// NewProductSearcher creates a mock searcher with a small sample catalog and
// a canned aggregation response so facets show up in mock mode.
func NewProductSearcher() *ProductSearcher {
	return &ProductSearcher{
		products: []model.Product{
			{
				ID:       "1",
				Code:     "runner-low",
				Name:     "Trail Runner Low",
				Slug:     "trail-runner-low",
				Price:    8995,
				Currency: "EUR",
				Taxons:   []string{"shoes", "running"},
			},
			{
				ID:       "2",
				Code:     "runner-mid",
				Name:     "Trail Runner Mid",
				Slug:     "trail-runner-mid",
				Price:    10995,
				Currency: "EUR",
				Taxons:   []string{"shoes", "running"},
			},
			{
				ID:       "3",
				Code:     "merino-tee",
				Name:     "Merino Tee",
				Slug:     "merino-tee",
				Price:    4995,
				Currency: "EUR",
				Taxons:   []string{"apparel"},
			},
		},
		aggregations: sampleAggregations(),
	}
}

// QueryProducts implements port.ProductSearcher over the in-memory catalog.
func (m *ProductSearcher) QueryProducts(ctx context.Context, criteria model.SearchCriteria) (*model.SearchResult, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}

	slog.DebugContext(ctx, "executing mock search",
		"phrase", criteria.Phrase,
		"taxon", criteria.TaxonCode,
	)

	matched := make([]model.Product, 0, len(m.products))
	for _, product := range m.products {
		if criteria.Phrase != nil &&
			!strings.Contains(strings.ToLower(product.Name), strings.ToLower(*criteria.Phrase)) {
			continue
		}
		if criteria.TaxonCode != nil && !hasTaxon(product, *criteria.TaxonCode) {
			continue
		}
		matched = append(matched, product)
	}

	result := &model.SearchResult{
		Products: matched,
		Total:    len(matched),
	}
	if len(criteria.FacetFields) > 0 {
		result.Aggregations = m.aggregations
	}
	return result, nil
}

// IsReady implements port.ProductSearcher.
func (m *ProductSearcher) IsReady(ctx context.Context) error {
	return m.readyErr
}

// AddProduct appends a product to the in-memory catalog.
func (m *ProductSearcher) AddProduct(product model.Product) {
	m.products = append(m.products, product)
}

// ClearProducts empties the in-memory catalog.
func (m *ProductSearcher) ClearProducts() {
	m.products = nil
}

// SetAggregations overrides the canned aggregation response.
func (m *ProductSearcher) SetAggregations(aggs model.AggregationSet) {
	m.aggregations = aggs
}

// SetSearchError makes QueryProducts fail with err.
func (m *ProductSearcher) SetSearchError(err error) {
	m.searchErr = err
}

// SetReadyError makes IsReady fail with err.
func (m *ProductSearcher) SetReadyError(err error) {
	m.readyErr = err
}

func hasTaxon(product model.Product, code string) bool {
	for _, taxon := range product.Taxons {
		if taxon == code {
			return true
		}
	}
	return false
}

// sampleAggregations mirrors the backend response shape for the sample
// catalog: two attribute facets plus a taxon aggregation with level-1 codes.
func sampleAggregations() model.AggregationSet {
	return model.AggregationSet{
		"filters": {
			DocCount: 3,
			Aggs: map[string]model.AggregationResult{
				"color": {
					DocCount: 3,
					Aggs: map[string]model.AggregationResult{
						"values": {Buckets: []model.Bucket{
							{Key: "black", DocCount: 2},
							{Key: "green", DocCount: 1},
						}},
					},
				},
				"size": {
					DocCount: 3,
					Aggs: map[string]model.AggregationResult{
						"values": {Buckets: []model.Bucket{
							{Key: "41", DocCount: 1},
							{Key: "42", DocCount: 1},
							{Key: "43", DocCount: 1},
						}},
					},
				},
			},
		},
		"attributes": {
			DocCount: 3,
			Aggs: map[string]model.AggregationResult{
				"code": {Buckets: []model.Bucket{
					{Key: "color", DocCount: 3, Aggs: map[string]model.AggregationResult{
						"name": {Buckets: []model.Bucket{{Key: "Color", DocCount: 3}}},
					}},
					{Key: "size", DocCount: 3, Aggs: map[string]model.AggregationResult{
						"name": {Buckets: []model.Bucket{{Key: "Size", DocCount: 3}}},
					}},
				}},
			},
		},
		"taxons": {
			DocCount: 3,
			Aggs: map[string]model.AggregationResult{
				"code": {Buckets: []model.Bucket{
					{Key: "shoes", DocCount: 2, Aggs: map[string]model.AggregationResult{
						"level": {Buckets: []model.Bucket{
							{Key: float64(1), DocCount: 2, Aggs: map[string]model.AggregationResult{
								"name": {Buckets: []model.Bucket{{Key: "Shoes", DocCount: 2}}},
							}},
						}},
					}},
					{Key: "apparel", DocCount: 1, Aggs: map[string]model.AggregationResult{
						"level": {Buckets: []model.Bucket{
							{Key: float64(1), DocCount: 1, Aggs: map[string]model.AggregationResult{
								"name": {Buckets: []model.Bucket{{Key: "Apparel", DocCount: 1}}},
							}},
						}},
					}},
				}},
			},
		},
	}
}
