// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/internal/domain/port"
	"github.com/storefront-commerce/catalog-search-service/internal/metrics"
	"github.com/storefront-commerce/catalog-search-service/pkg/constants"
	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
)

// CatalogSearcher defines the interface for faceted catalog search
// operations exposed to the transport layer.
type CatalogSearcher interface {
	// Search executes a faceted catalog search.
	Search(ctx context.Context, criteria model.SearchCriteria) (*model.ProductSearchResult, error)

	// IsReady checks if the search backend and taxonomy source are ready.
	IsReady(ctx context.Context) error
}

// ProductSearch handles catalog search business operations. It depends on
// abstractions (ports) rather than concrete implementations.
type ProductSearch struct {
	searcher   port.ProductSearcher
	taxonomy   port.TaxonomyResolver
	translator port.Translator
	cache      port.SearchCache
}

// Search validates the criteria, resolves the current taxon context, runs
// the backend search and reconstructs the ordered facet list from the
// aggregation response.
func (s *ProductSearch) Search(ctx context.Context, criteria model.SearchCriteria) (*model.ProductSearchResult, error) {
	started := time.Now()

	slog.DebugContext(ctx, "starting catalog search",
		"phrase", criteria.Phrase,
		"taxon", criteria.TaxonCode,
		"page", criteria.Page,
		"page_size", criteria.PageSize,
	)

	if err := s.normalizeCriteria(&criteria); err != nil {
		metrics.SearchesTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	cacheKey := searchCacheKey(criteria)
	if cached := s.cachedResult(ctx, cacheKey); cached != nil {
		metrics.SearchesTotal.WithLabelValues("cached").Inc()
		return cached, nil
	}

	current, err := s.currentTaxon(ctx, criteria)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	result, err := s.searcher.QueryProducts(ctx, criteria)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		slog.ErrorContext(ctx, "search operation failed", "error", err)
		return nil, fmt.Errorf("search operation failed: %w", err)
	}

	faceted := newFacetedResults(criteria.PageSize, criteria.Page, result, current, s.translator.Translate)
	metrics.FiltersExtracted.Observe(float64(len(faceted.Filters)))

	response := &model.ProductSearchResult{
		Products:  faceted.Pager.Current(),
		Total:     faceted.Pager.Count(),
		Page:      faceted.Pager.Page(),
		PageSize:  criteria.PageSize,
		Pages:     faceted.Pager.Pages(),
		Filters:   faceted.Filters,
		PageToken: faceted.PageToken,
	}

	s.storeResult(ctx, cacheKey, response)

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SearchDuration.Observe(time.Since(started).Seconds())

	slog.DebugContext(ctx, "catalog search completed",
		"total", response.Total,
		"filters", len(response.Filters),
	)
	return response, nil
}

// normalizeCriteria applies defaults and rejects unusable input. Empty facet
// field identifiers are dropped rather than rejected.
func (s *ProductSearch) normalizeCriteria(criteria *model.SearchCriteria) error {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = constants.DefaultPageSize
	}
	if criteria.PageSize > constants.MaxPageSize {
		return errors.NewValidation(fmt.Sprintf("page size must not exceed %d", constants.MaxPageSize))
	}

	// Copy rather than filter in place: the slice may be shared between
	// concurrent requests.
	fields := make([]string, 0, len(criteria.FacetFields))
	for _, field := range criteria.FacetFields {
		if strings.TrimSpace(field) == "" {
			continue
		}
		fields = append(fields, field)
	}
	criteria.FacetFields = fields

	return nil
}

// currentTaxon resolves the browsing context when a taxon code is supplied.
func (s *ProductSearch) currentTaxon(ctx context.Context, criteria model.SearchCriteria) (*model.Taxon, error) {
	if criteria.TaxonCode == nil || *criteria.TaxonCode == "" {
		return nil, nil
	}

	taxon, err := s.taxonomy.TaxonByCode(ctx, *criteria.TaxonCode)
	if err != nil {
		slog.ErrorContext(ctx, "taxon lookup failed",
			"taxon", *criteria.TaxonCode,
			"error", err,
		)
		return nil, err
	}
	return taxon, nil
}

// cachedResult returns a cached search result, treating every cache problem
// as a miss.
func (s *ProductSearch) cachedResult(ctx context.Context, key string) *model.ProductSearchResult {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		slog.DebugContext(ctx, "search cache lookup failed", "error", err)
		return nil
	}
	if cached == nil {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return cached
}

// storeResult caches a search result; failures are logged and ignored.
func (s *ProductSearch) storeResult(ctx context.Context, key string, result *model.ProductSearchResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, result); err != nil {
		slog.DebugContext(ctx, "search cache store failed", "error", err)
	}
}

// IsReady reports whether the search backend and taxonomy source are ready.
func (s *ProductSearch) IsReady(ctx context.Context) error {
	if err := s.searcher.IsReady(ctx); err != nil {
		return err
	}
	return s.taxonomy.IsReady(ctx)
}

// searchCacheKey builds a deterministic digest of the criteria.
func searchCacheKey(criteria model.SearchCriteria) string {
	var b strings.Builder
	if criteria.Phrase != nil {
		b.WriteString(*criteria.Phrase)
	}
	b.WriteByte('|')
	if criteria.TaxonCode != nil {
		b.WriteString(*criteria.TaxonCode)
	}
	b.WriteByte('|')
	b.WriteString(strings.Join(criteria.FacetFields, ","))
	b.WriteByte('|')
	b.WriteString(criteria.SortBy)
	b.WriteByte(':')
	b.WriteString(criteria.SortOrder)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(criteria.Page))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(criteria.PageSize))
	b.WriteByte('|')
	if criteria.PageToken != nil {
		b.WriteString(*criteria.PageToken)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return "catalog-search:" + hex.EncodeToString(sum[:])
}

// NewProductSearch creates a new ProductSearch instance. The cache is
// optional; pass nil to disable result caching.
func NewProductSearch(searcher port.ProductSearcher, taxonomy port.TaxonomyResolver, translator port.Translator, cache port.SearchCache) CatalogSearcher {
	return &ProductSearch{
		searcher:   searcher,
		taxonomy:   taxonomy,
		translator: translator,
		cache:      cache,
	}
}
