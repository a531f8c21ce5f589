// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"fmt"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
)

// TaxonomyResolver is an in-memory implementation of port.TaxonomyResolver.
type TaxonomyResolver struct {
	taxons   map[string]model.Taxon
	readyErr error
}

// NewTaxonomyResolver creates a mock resolver with a small category tree.
func NewTaxonomyResolver() *TaxonomyResolver {
	return &TaxonomyResolver{
		taxons: map[string]model.Taxon{
			"catalog": {
				Code:  "catalog",
				Name:  "Catalog",
				Level: 0,
				Children: []model.Taxon{
					{Code: "shoes", Name: "Shoes", Level: 1},
					{Code: "apparel", Name: "Apparel", Level: 1},
				},
			},
			"shoes": {
				Code:  "shoes",
				Name:  "Shoes",
				Level: 1,
				Children: []model.Taxon{
					{Code: "running", Name: "Running", Level: 2},
					{Code: "hiking", Name: "Hiking", Level: 2},
				},
			},
			"apparel": {
				Code:  "apparel",
				Name:  "Apparel",
				Level: 1,
			},
		},
	}
}

// TaxonByCode implements port.TaxonomyResolver.
func (m *TaxonomyResolver) TaxonByCode(ctx context.Context, code string) (*model.Taxon, error) {
	taxon, ok := m.taxons[code]
	if !ok {
		return nil, errors.NewNotFound(fmt.Sprintf("taxon %q not found", code))
	}
	return &taxon, nil
}

// IsReady implements port.TaxonomyResolver.
func (m *TaxonomyResolver) IsReady(ctx context.Context) error {
	return m.readyErr
}

// AddTaxon registers a taxon under its code.
func (m *TaxonomyResolver) AddTaxon(taxon model.Taxon) {
	m.taxons[taxon.Code] = taxon
}

// SetReadyError makes IsReady fail with err.
func (m *TaxonomyResolver) SetReadyError(err error) {
	m.readyErr = err
}
