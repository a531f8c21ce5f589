// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package model

// Product is the catalog document returned by the search backend, hydrated
// into its domain shape. The JSON fields mirror the source fields the
// backend client asks for.
type Product struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	// Price in minor currency units.
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
	// Taxon codes the product is classified under.
	Taxons []string `json:"taxons,omitempty"`
}
