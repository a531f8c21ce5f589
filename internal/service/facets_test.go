// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
)

func identityTranslate(key string) string { return key }

func mustAggregations(t *testing.T, payload string) model.AggregationSet {
	t.Helper()
	var aggs model.AggregationSet
	require.NoError(t, json.Unmarshal([]byte(payload), &aggs))
	return aggs
}

func TestExtractFiltersOrdering(t *testing.T) {
	// color and material tie on document count; material offers more
	// distinct values and must come first.
	aggs := mustAggregations(t, `{
		"filters": {
			"doc_count": 100,
			"color": {
				"doc_count": 30,
				"values": {"buckets": [
					{"key": "red", "doc_count": 20},
					{"key": "blue", "doc_count": 10}
				]}
			},
			"material": {
				"doc_count": 30,
				"values": {"buckets": [
					{"key": "wool", "doc_count": 15},
					{"key": "cotton", "doc_count": 10},
					{"key": "linen", "doc_count": 5}
				]}
			},
			"size": {
				"doc_count": 80,
				"values": {"buckets": [
					{"key": "m", "doc_count": 50},
					{"key": "l", "doc_count": 30}
				]}
			}
		}
	}`)

	filters := extractFilters(aggs, nil, identityTranslate)

	require.Len(t, filters, 3)
	assertion := assert.New(t)
	assertion.Equal("size", filters[0].Label)
	assertion.Equal("material", filters[1].Label)
	assertion.Equal("color", filters[2].Label)
}

func TestExtractFiltersDeterministic(t *testing.T) {
	payload := `{
		"filters": {
			"doc_count": 60,
			"brand": {
				"doc_count": 20,
				"values": {"buckets": [{"key": "acme", "doc_count": 20}]}
			},
			"color": {
				"doc_count": 20,
				"values": {"buckets": [{"key": "red", "doc_count": 20}]}
			},
			"size": {
				"doc_count": 20,
				"values": {"buckets": [{"key": "m", "doc_count": 20}]}
			}
		}
	}`

	// Full ties everywhere: repeated extraction must produce the same
	// order every time despite map iteration being randomized.
	first := extractFilters(mustAggregations(t, payload), nil, identityTranslate)
	for i := 0; i < 20; i++ {
		again := extractFilters(mustAggregations(t, payload), nil, identityTranslate)
		assert.Equal(t, first, again)
	}

	require.Len(t, first, 3)
	assert.Equal(t, "brand", first[0].Label)
	assert.Equal(t, "color", first[1].Label)
	assert.Equal(t, "size", first[2].Label)
}

func TestInitFiltersSkipsZeroCounts(t *testing.T) {
	aggs := mustAggregations(t, `{
		"filters": {
			"doc_count": 50,
			"color": {
				"doc_count": 50,
				"values": {"buckets": [
					{"key": "red", "doc_count": 30},
					{"key": "green", "doc_count": 0},
					{"doc_count": 5},
					{"key": "blue", "doc_count": 20}
				]}
			},
			"size": {
				"doc_count": 0,
				"values": {"buckets": [{"key": "m", "doc_count": 0}]}
			}
		}
	}`)

	filters := initFilters(aggs)

	require.Len(t, filters, 1)
	assertion := assert.New(t)
	assertion.Equal("color", filters[0].Label)
	require.Len(t, filters[0].Values, 2)
	assertion.Equal(model.FilterValue{Value: "red", Count: 30}, filters[0].Values[0])
	assertion.Equal(model.FilterValue{Value: "blue", Count: 20}, filters[0].Values[1])
}

func TestInitFiltersLabelsFromAttributes(t *testing.T) {
	aggs := mustAggregations(t, `{
		"filters": {
			"doc_count": 40,
			"color": {
				"doc_count": 30,
				"values": {"buckets": [{"key": "red", "doc_count": 30}]}
			},
			"fit": {
				"doc_count": 10,
				"values": {"buckets": [{"key": "slim", "doc_count": 10}]}
			}
		},
		"attributes": {
			"doc_count": 40,
			"code": {"buckets": [
				{
					"key": "color",
					"doc_count": 30,
					"name": {"buckets": [
						{"key": "Colour", "doc_count": 25},
						{"key": "Color (US)", "doc_count": 5}
					]}
				},
				{"key": "fit", "doc_count": 10, "name": {"buckets": []}}
			]}
		}
	}`)

	filters := initFilters(aggs)

	require.Len(t, filters, 2)
	assertion := assert.New(t)
	// First name bucket wins; a code without a name falls back to the
	// raw field identifier.
	assertion.Equal("Colour", filters[0].Label)
	assertion.Equal("fit", filters[1].Label)
}

func TestAddTaxonFilter(t *testing.T) {
	taxonPayload := `{
		"filters": {
			"doc_count": 25,
			"color": {
				"doc_count": 25,
				"values": {"buckets": [{"key": "red", "doc_count": 25}]}
			}
		},
		"taxons": {
			"doc_count": 25,
			"code": {"buckets": [
				{
					"key": "sneakers",
					"doc_count": 15,
					"level": {"buckets": [
						{"key": 2, "doc_count": 15, "name": {"buckets": [{"key": "Sneakers", "doc_count": 15}]}},
						{"key": 3, "doc_count": 4}
					]}
				},
				{
					"key": "boots",
					"doc_count": 10,
					"level": {"buckets": [
						{"key": 2, "doc_count": 10, "name": {"buckets": [{"key": "Boots", "doc_count": 10}]}}
					]}
				},
				{
					"key": "laces",
					"doc_count": 5,
					"level": {"buckets": [{"key": 3, "doc_count": 5}]}
				},
				{
					"key": "sandals",
					"doc_count": 0,
					"level": {"buckets": [{"key": 2, "doc_count": 0}]}
				}
			]}
		}
	}`

	shoes := &model.Taxon{
		Code:  "shoes",
		Name:  "Shoes",
		Level: 1,
		Children: []model.Taxon{
			{Code: "sneakers", Name: "Sneakers", Level: 2},
			{Code: "boots", Name: "Boots", Level: 2},
		},
	}

	tests := []struct {
		name        string
		current     *model.Taxon
		wantTaxon   bool
		wantValues  []model.FilterValue
		wantFilters int
	}{
		{
			name:    "direct children of current taxon",
			current: shoes,
			wantValues: []model.FilterValue{
				{Value: "Sneakers", Count: 15},
				{Value: "Boots", Count: 10},
			},
			wantTaxon:   true,
			wantFilters: 2,
		},
		{
			name:        "root browsing takes level one only",
			current:     nil,
			wantTaxon:   false,
			wantFilters: 1,
		},
		{
			name: "no children match",
			current: &model.Taxon{
				Code:  "apparel",
				Name:  "Apparel",
				Level: 1,
				Children: []model.Taxon{
					{Code: "tees", Name: "Tees", Level: 2},
				},
			},
			wantTaxon:   false,
			wantFilters: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			aggs := mustAggregations(t, taxonPayload)
			filters := extractFilters(aggs, tc.current, identityTranslate)

			require.Len(t, filters, tc.wantFilters)
			if !tc.wantTaxon {
				for _, f := range filters {
					assert.NotEqual(t, TaxonFilterLabel, f.Label)
				}
				return
			}

			assertion := assert.New(t)
			assertion.Equal(TaxonFilterLabel, filters[0].Label)
			assertion.Equal(int64(25), filters[0].Count)
			assertion.Equal(tc.wantValues, filters[0].Values)
		})
	}
}

func TestAddTaxonFilterMissingAggregation(t *testing.T) {
	aggs := mustAggregations(t, `{
		"filters": {
			"doc_count": 10,
			"color": {
				"doc_count": 10,
				"values": {"buckets": [{"key": "red", "doc_count": 10}]}
			}
		}
	}`)

	filters := extractFilters(aggs, nil, identityTranslate)

	require.Len(t, filters, 1)
	assert.Equal(t, "color", filters[0].Label)
}

func TestAddTaxonFilterTranslatesLabel(t *testing.T) {
	aggs := mustAggregations(t, `{
		"taxons": {
			"doc_count": 5,
			"code": {"buckets": [
				{
					"key": "shoes",
					"doc_count": 5,
					"level": {"buckets": [
						{"key": 1, "doc_count": 5, "name": {"buckets": [{"key": "Shoes", "doc_count": 5}]}}
					]}
				}
			]}
		}
	}`)

	filters := extractFilters(aggs, nil, func(key string) string {
		if key == TaxonFilterLabel {
			return "Category"
		}
		return key
	})

	require.Len(t, filters, 1)
	assertion := assert.New(t)
	assertion.Equal("Category", filters[0].Label)
	assertion.Equal([]model.FilterValue{{Value: "Shoes", Count: 5}}, filters[0].Values)
}

func TestNewFacetedResults(t *testing.T) {
	tests := []struct {
		name         string
		result       *model.SearchResult
		pageSize     int
		page         int
		wantProducts int
		wantTotal    int
		wantPages    int
	}{
		{
			name:     "nil result is empty",
			result:   nil,
			pageSize: 24,
			page:     1,
		},
		{
			name: "single page",
			result: &model.SearchResult{
				Products: []model.Product{{Code: "runner-low"}, {Code: "runner-mid"}},
				Total:    2,
			},
			pageSize:     24,
			page:         1,
			wantProducts: 2,
			wantTotal:    2,
			wantPages:    1,
		},
		{
			name: "total spans several pages",
			result: &model.SearchResult{
				Products: []model.Product{{Code: "runner-low"}},
				Total:    53,
			},
			pageSize:     24,
			page:         3,
			wantProducts: 1,
			wantTotal:    53,
			wantPages:    3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := newFacetedResults(tc.pageSize, tc.page, tc.result, nil, identityTranslate)

			require.NotNil(t, got)
			require.NotNil(t, got.Pager)

			assertion := assert.New(t)
			assertion.Len(got.Products, tc.wantProducts)
			assertion.Equal(tc.wantTotal, got.Total)
			assertion.NotNil(got.Filters)
			if tc.result == nil {
				assertion.Empty(got.Filters)
				assertion.Zero(got.Pager.Pages())
				return
			}
			assertion.Equal(tc.wantPages, got.Pager.Pages())
		})
	}
}
