// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package opensearch

// Cardinality caps for the display-name lookup aggregations. These are not
// the number of buckets shown to the user but the number of distinct lookup
// entries the backend materializes to resolve display names, set generously
// above realistic catalog sizes.
const (
	attributeLookupSize = 100
	taxonLookupSize     = 500
)

// Index field paths for the nested attribute and taxon documents.
const (
	attributesPath      = "attributes"
	attributeCodeField  = "attributes.code"
	attributeValueField = "attributes.value"
	attributeNameField  = "attributes.name"

	taxonsPath      = "taxons"
	taxonCodeField  = "taxons.code"
	taxonLevelField = "taxons.level"
	taxonNameField  = "taxons.name"
)

// aggregation is one node of an aggregation request tree.
type aggregation struct {
	Nested *nestedAggregation     `json:"nested,omitempty"`
	Filter *filterClause          `json:"filter,omitempty"`
	Terms  *termsAggregation      `json:"terms,omitempty"`
	Aggs   map[string]aggregation `json:"aggs,omitempty"`
}

type nestedAggregation struct {
	Path string `json:"path"`
}

type filterClause struct {
	Term map[string]string `json:"term"`
}

type termsAggregation struct {
	Field string `json:"field"`
	Size  int    `json:"size,omitempty"`
}

// buildFieldAggregation emits the fragment for one filterable attribute
// field: a filter narrowing to documents carrying the attribute code, with a
// terms bucket per distinct attribute value inside that subset. The value
// bucket list carries no explicit size; the backend default governs how many
// distinct values come back per facet.
func buildFieldAggregation(field string) aggregation {
	return aggregation{
		Filter: &filterClause{
			Term: map[string]string{attributeCodeField: field},
		},
		Aggs: map[string]aggregation{
			"values": {
				Terms: &termsAggregation{Field: attributeValueField},
			},
		},
	}
}

// buildAggregationSet emits the full aggregation request for the given
// attribute fields: one fragment per field under the filters container, plus
// the attributes and taxons display-name lookup aggregations. An empty field
// set yields no aggregations at all.
func buildAggregationSet(fields []string) map[string]aggregation {
	if len(fields) == 0 {
		return nil
	}

	perField := make(map[string]aggregation, len(fields))
	for _, field := range fields {
		perField[field] = buildFieldAggregation(field)
	}

	return map[string]aggregation{
		"filters": {
			Nested: &nestedAggregation{Path: attributesPath},
			Aggs:   perField,
		},
		"attributes": {
			Nested: &nestedAggregation{Path: attributesPath},
			Aggs: map[string]aggregation{
				"code": {
					Terms: &termsAggregation{Field: attributeCodeField, Size: attributeLookupSize},
					Aggs: map[string]aggregation{
						"name": {
							Terms: &termsAggregation{Field: attributeNameField},
						},
					},
				},
			},
		},
		"taxons": {
			Nested: &nestedAggregation{Path: taxonsPath},
			Aggs: map[string]aggregation{
				"code": {
					Terms: &termsAggregation{Field: taxonCodeField, Size: taxonLookupSize},
					Aggs: map[string]aggregation{
						"level": {
							Terms: &termsAggregation{Field: taxonLevelField},
							Aggs: map[string]aggregation{
								"name": {
									Terms: &termsAggregation{Field: taxonNameField},
								},
							},
						},
					},
				},
			},
		},
	}
}
