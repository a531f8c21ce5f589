// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFieldAggregation(t *testing.T) {
	got, err := json.Marshal(buildFieldAggregation("color"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"filter": {
			"term": {"attributes.code": "color"}
		},
		"aggs": {
			"values": {
				"terms": {"field": "attributes.value"}
			}
		}
	}`, string(got))
}

func TestBuildAggregationSet(t *testing.T) {
	set := buildAggregationSet([]string{"color", "size"})

	require.Len(t, set, 3)
	assertion := assert.New(t)

	filters, ok := set["filters"]
	require.True(t, ok)
	require.NotNil(t, filters.Nested)
	assertion.Equal("attributes", filters.Nested.Path)
	require.Len(t, filters.Aggs, 2)
	assertion.Equal(buildFieldAggregation("color"), filters.Aggs["color"])
	assertion.Equal(buildFieldAggregation("size"), filters.Aggs["size"])

	attributes, ok := set["attributes"]
	require.True(t, ok)
	require.NotNil(t, attributes.Nested)
	assertion.Equal("attributes", attributes.Nested.Path)
	code := attributes.Aggs["code"]
	require.NotNil(t, code.Terms)
	assertion.Equal("attributes.code", code.Terms.Field)
	assertion.Equal(attributeLookupSize, code.Terms.Size)
	name := code.Aggs["name"]
	require.NotNil(t, name.Terms)
	assertion.Equal("attributes.name", name.Terms.Field)

	taxons, ok := set["taxons"]
	require.True(t, ok)
	require.NotNil(t, taxons.Nested)
	assertion.Equal("taxons", taxons.Nested.Path)
	taxonCode := taxons.Aggs["code"]
	require.NotNil(t, taxonCode.Terms)
	assertion.Equal("taxons.code", taxonCode.Terms.Field)
	assertion.Equal(taxonLookupSize, taxonCode.Terms.Size)
	level := taxonCode.Aggs["level"]
	require.NotNil(t, level.Terms)
	assertion.Equal("taxons.level", level.Terms.Field)
	taxonName := level.Aggs["name"]
	require.NotNil(t, taxonName.Terms)
	assertion.Equal("taxons.name", taxonName.Terms.Field)
}

func TestBuildAggregationSetEmpty(t *testing.T) {
	assert.Nil(t, buildAggregationSet(nil))
	assert.Nil(t, buildAggregationSet([]string{}))
}

func TestBuildAggregationSetSerializes(t *testing.T) {
	got, err := json.Marshal(buildAggregationSet([]string{"brand"}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"filters": {
			"nested": {"path": "attributes"},
			"aggs": {
				"brand": {
					"filter": {"term": {"attributes.code": "brand"}},
					"aggs": {"values": {"terms": {"field": "attributes.value"}}}
				}
			}
		},
		"attributes": {
			"nested": {"path": "attributes"},
			"aggs": {
				"code": {
					"terms": {"field": "attributes.code", "size": 100},
					"aggs": {"name": {"terms": {"field": "attributes.name"}}}
				}
			}
		},
		"taxons": {
			"nested": {"path": "taxons"},
			"aggs": {
				"code": {
					"terms": {"field": "taxons.code", "size": 500},
					"aggs": {
						"level": {
							"terms": {"field": "taxons.level"},
							"aggs": {"name": {"terms": {"field": "taxons.name"}}}
						}
					}
				}
			}
		}
	}`, string(got))
}
