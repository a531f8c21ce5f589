// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"strconv"
)

// AggregationSet maps top-level aggregation names to their results.
type AggregationSet map[string]AggregationResult

// Agg returns the named aggregation result, or a zero value when absent.
// Missing aggregations are treated as empty, never as an error.
func (s AggregationSet) Agg(name string) AggregationResult {
	return s[name]
}

// AggregationResult is one node of the nested aggregation response tree:
// a document count, an optional bucket list (terms aggregations), and any
// named sub-aggregations.
type AggregationResult struct {
	DocCount int64
	Buckets  []Bucket
	Aggs     map[string]AggregationResult
}

// Agg returns the named sub-aggregation, or a zero value when absent.
func (a AggregationResult) Agg(name string) AggregationResult {
	return a.Aggs[name]
}

// UnmarshalJSON decodes an aggregation node. Every sibling key of doc_count
// and buckets that holds a JSON object is collected as a sub-aggregation.
// Malformed nodes decode to an empty result rather than failing.
func (a *AggregationResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	for name, value := range raw {
		switch name {
		case "doc_count":
			_ = json.Unmarshal(value, &a.DocCount)
		case "buckets":
			_ = json.Unmarshal(value, &a.Buckets)
		case "doc_count_error_upper_bound", "sum_other_doc_count", "meta":
			// terms aggregation bookkeeping, not sub-aggregations
		default:
			if len(value) == 0 || value[0] != '{' {
				continue
			}
			var sub AggregationResult
			if err := json.Unmarshal(value, &sub); err != nil {
				continue
			}
			if a.Aggs == nil {
				a.Aggs = make(map[string]AggregationResult)
			}
			a.Aggs[name] = sub
		}
	}
	return nil
}

// Bucket is a single terms-aggregation bucket: a key (string or numeric),
// a document count, and any nested sub-aggregations.
type Bucket struct {
	Key      any
	DocCount int64
	Aggs     map[string]AggregationResult
}

// Agg returns the named sub-aggregation of the bucket, or a zero value.
func (b Bucket) Agg(name string) AggregationResult {
	return b.Aggs[name]
}

// HasKey reports whether the bucket carried a key at all.
func (b Bucket) HasKey() bool {
	return b.Key != nil
}

// KeyString returns the bucket key as a string. Numeric keys are formatted
// without a trailing fraction when integral.
func (b Bucket) KeyString() string {
	switch k := b.Key.(type) {
	case string:
		return k
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(k)
	}
	return ""
}

// KeyInt returns the bucket key as an integer when it is numeric (or a
// numeric string), and reports whether the conversion succeeded.
func (b Bucket) KeyInt() (int, bool) {
	switch k := b.Key.(type) {
	case float64:
		return int(k), true
	case string:
		n, err := strconv.Atoi(k)
		return n, err == nil
	}
	return 0, false
}

// UnmarshalJSON decodes a bucket. Sibling keys holding JSON objects are
// collected as sub-aggregations; malformed buckets decode to a keyless
// bucket, which extraction skips.
func (b *Bucket) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	for name, value := range raw {
		switch name {
		case "key":
			_ = json.Unmarshal(value, &b.Key)
		case "doc_count":
			_ = json.Unmarshal(value, &b.DocCount)
		case "key_as_string":
			// prefer the raw key
		default:
			if len(value) == 0 || value[0] != '{' {
				continue
			}
			var sub AggregationResult
			if err := json.Unmarshal(value, &sub); err != nil {
				continue
			}
			if b.Aggs == nil {
				b.Aggs = make(map[string]AggregationResult)
			}
			b.Aggs[name] = sub
		}
	}
	return nil
}
