// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package taxonomy

// taxonResponse is the taxonomy API representation of a taxon.
type taxonResponse struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Level    int             `json:"level"`
	Children []taxonResponse `json:"children"`
}
