// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
)

// ProductSearcher defines the behavior for product search operations.
// This abstraction allows different search implementations (OpenSearch,
// mock, etc.) without the domain layer knowing about specific backends.
type ProductSearcher interface {
	// QueryProducts executes a catalog search, including the aggregations
	// needed for facet extraction, based on the provided criteria.
	QueryProducts(ctx context.Context, criteria model.SearchCriteria) (*model.SearchResult, error)

	// IsReady checks if the search backend is reachable.
	IsReady(ctx context.Context) error
}
