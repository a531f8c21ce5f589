// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package model

// Taxon is a node in the product category hierarchy. Level is the depth of
// the node; the root of the tree is level 0. Children holds the direct
// children only, one hierarchy level below this node.
type Taxon struct {
	Code     string  `json:"code"`
	Name     string  `json:"name,omitempty"`
	Level    int     `json:"level"`
	Children []Taxon `json:"children,omitempty"`
}

// ChildLevels returns the direct child codes mapped to their levels.
func (t *Taxon) ChildLevels() map[string]int {
	levels := make(map[string]int, len(t.Children))
	for _, child := range t.Children {
		levels[child.Code] = child.Level
	}
	return levels
}
