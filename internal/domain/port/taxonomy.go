// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
)

// TaxonomyResolver looks up taxons in the category hierarchy owned by an
// external taxonomy service (NATS request/reply or HTTP API).
type TaxonomyResolver interface {
	// TaxonByCode returns the taxon with the given code including its
	// direct children. A missing taxon yields an errors.NotFound.
	TaxonByCode(ctx context.Context, code string) (*model.Taxon, error)

	// IsReady checks if the taxonomy source is reachable.
	IsReady(ctx context.Context) error
}
