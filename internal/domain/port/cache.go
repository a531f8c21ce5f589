// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
)

// SearchCache stores complete search results keyed by a criteria digest.
// Cache failures must degrade to a cache miss, never to a search failure.
type SearchCache interface {
	// Get returns the cached result for key, or nil on a miss.
	Get(ctx context.Context, key string) (*model.ProductSearchResult, error)

	// Set stores the result under key for the cache's configured TTL.
	Set(ctx context.Context, key string, result *model.ProductSearchResult) error
}
