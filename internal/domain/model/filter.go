// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package model

// Filter is a user-facing facet: a display label, the number of documents
// covered by the facet's bucket, and the selectable values. Count is the
// bucket's own document count, not necessarily the sum of the value counts,
// since the backend may cap the distinct values it returns.
type Filter struct {
	Label  string        `json:"label"`
	Count  int64         `json:"count"`
	Values []FilterValue `json:"values,omitempty"`
}

// FilterValue is a single selectable facet value with its document count.
// Zero-count values are dropped during extraction, so Count is always >= 1.
type FilterValue struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}
