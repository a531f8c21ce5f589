// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"sort"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/pkg/paging"
)

// TaxonFilterLabel is the translatable key used as the taxonomy facet label.
const TaxonFilterLabel = "app.ui.taxon"

// Aggregation names produced by the request builder and consumed here.
const (
	filtersAggregation    = "filters"
	attributesAggregation = "attributes"
	taxonsAggregation     = "taxons"
)

// FacetedResults is the hydrated outcome of one catalog search: the page of
// products in backend relevance order, the overall hit count, the ordered
// facet list, and a pager over the fetched window.
type FacetedResults struct {
	Products  []model.Product
	Total     int
	Filters   []model.Filter
	PageToken *string
	Pager     *paging.Pager[model.Product]
}

// newFacetedResults builds the results for one search request. A nil result
// yields an empty outcome with a pager over zero items. The current taxon is
// optional; absent means root-level browsing.
func newFacetedResults(pageSize, page int, result *model.SearchResult, current *model.Taxon, translate func(string) string) *FacetedResults {
	if result == nil {
		return &FacetedResults{
			Products: []model.Product{},
			Filters:  []model.Filter{},
			Pager:    paging.NewPager([]model.Product{}, 0, pageSize, page),
		}
	}

	products := result.Products
	if products == nil {
		products = []model.Product{}
	}

	return &FacetedResults{
		Products:  products,
		Total:     result.Total,
		Filters:   extractFilters(result.Aggregations, current, translate),
		PageToken: result.PageToken,
		Pager:     paging.NewPager(products, result.Total, pageSize, page),
	}
}

// extractFilters parses the nested aggregation response into the ordered
// filter list: per-attribute facets sorted by descending document count
// (more distinct values win a count tie), with the taxonomy facet, when one
// exists, prepended ahead of the sort order.
func extractFilters(aggs model.AggregationSet, current *model.Taxon, translate func(string) string) []model.Filter {
	filters := initFilters(aggs)

	sort.SliceStable(filters, func(i, j int) bool {
		if filters[i].Count != filters[j].Count {
			return filters[i].Count > filters[j].Count
		}
		// A count tie goes to the filter offering more distinct values.
		return len(filters[i].Values) > len(filters[j].Values)
	})

	return addTaxonFilter(filters, aggs, current, translate)
}

// initFilters builds one Filter per attribute-field fragment of the filters
// container aggregation. Fragments with a zero document count are skipped
// entirely; value buckets missing a key or count are skipped individually.
// Fields are visited in lexicographic order so extraction is deterministic.
func initFilters(aggs model.AggregationSet) []model.Filter {
	names := attributeNames(aggs)
	container := aggs.Agg(filtersAggregation)

	fields := make([]string, 0, len(container.Aggs))
	for field := range container.Aggs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	filters := make([]model.Filter, 0, len(fields))
	for _, field := range fields {
		fragment := container.Aggs[field]
		if fragment.DocCount == 0 {
			continue
		}

		label := names[field]
		if label == "" {
			label = field
		}

		filter := model.Filter{Label: label, Count: fragment.DocCount}
		for _, bucket := range fragment.Agg("values").Buckets {
			if !bucket.HasKey() || bucket.DocCount == 0 {
				continue
			}
			filter.Values = append(filter.Values, model.FilterValue{
				Value: bucket.KeyString(),
				Count: bucket.DocCount,
			})
		}
		filters = append(filters, filter)
	}

	return filters
}

// attributeNames builds the attribute code to display name lookup from the
// attributes side-channel aggregation. When a code carries several name
// buckets the first one wins; codes without a name bucket are left out and
// fall back to the raw field identifier at labeling time.
func attributeNames(aggs model.AggregationSet) map[string]string {
	codes := aggs.Agg(attributesAggregation).Agg("code").Buckets

	names := make(map[string]string, len(codes))
	for _, code := range codes {
		key := code.KeyString()
		if key == "" {
			continue
		}
		if _, seen := names[key]; seen {
			continue
		}
		nameBuckets := code.Agg("name").Buckets
		if len(nameBuckets) == 0 || !nameBuckets[0].HasKey() {
			continue
		}
		names[key] = nameBuckets[0].KeyString()
	}
	return names
}

// addTaxonFilter computes the taxonomy facet limited to one hierarchy level
// below the current browsing context and prepends it to the sorted filter
// list. Without a current taxon the context is the root (level 0). Each
// taxon code contributes at most one value: the first level bucket matching
// currentLevel+1 is taken and the remaining levels for that code are
// abandoned. An empty candidate is discarded.
func addTaxonFilter(filters []model.Filter, aggs model.AggregationSet, current *model.Taxon, translate func(string) string) []model.Filter {
	taxons := aggs.Agg(taxonsAggregation)
	if taxons.DocCount == 0 {
		return filters
	}

	currentLevel := 0
	var childLevels map[string]int
	if current != nil {
		currentLevel = current.Level
		childLevels = current.ChildLevels()
	}

	taxonFilter := model.Filter{
		Label: translate(TaxonFilterLabel),
		Count: taxons.DocCount,
	}

	for _, code := range taxons.Agg("code").Buckets {
		if code.DocCount == 0 {
			continue
		}
		for _, level := range code.Agg("level").Buckets {
			depth, ok := level.KeyInt()
			if !ok || depth != currentLevel+1 {
				continue
			}
			if current != nil {
				if _, isChild := childLevels[code.KeyString()]; !isChild {
					continue
				}
			}

			name := code.KeyString()
			if nameBuckets := level.Agg("name").Buckets; len(nameBuckets) > 0 && nameBuckets[0].HasKey() {
				name = nameBuckets[0].KeyString()
			}
			taxonFilter.Values = append(taxonFilter.Values, model.FilterValue{
				Value: name,
				Count: code.DocCount,
			})
			break
		}
	}

	if len(taxonFilter.Values) == 0 {
		return filters
	}
	return append([]model.Filter{taxonFilter}, filters...)
}
