// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"net/http"

	usecase "github.com/storefront-commerce/catalog-search-service/internal/service"
)

// CatalogAPI exposes the faceted catalog search over HTTP using clean
// architecture: handlers convert the transport shapes and delegate to the
// service layer.
type CatalogAPI struct {
	catalog     usecase.CatalogSearcher
	facetFields []string
	tokenSecret *[32]byte
}

// SearchProducts handles GET /products: a faceted catalog search.
func (a *CatalogAPI) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	criteria, err := a.requestToCriteria(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := a.catalog.Search(ctx, criteria)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// Readyz reports whether the service can take inbound requests.
func (a *CatalogAPI) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.catalog.IsReady(ctx); err != nil {
		slog.ErrorContext(ctx, "readiness check failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

// Livez reports whether the service is alive. It always succeeds while the
// process runs; non-recoverable errors must self-terminate the process.
func (a *CatalogAPI) Livez(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

// NewCatalogAPI assembles the HTTP API from environment-selected
// implementations.
func NewCatalogAPI(ctx context.Context) *CatalogAPI {
	secret := PageTokenSecret()

	searcher := SearcherImpl(ctx, secret)
	taxonomy := TaxonomyImpl(ctx)
	translator := TranslatorImpl(ctx)
	searchCache := CacheImpl(ctx)

	return &CatalogAPI{
		catalog:     usecase.NewProductSearch(searcher, taxonomy, translator, searchCache),
		facetFields: FacetFields(),
		tokenSecret: secret,
	}
}
