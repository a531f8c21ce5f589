// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/internal/domain/port"
	"github.com/storefront-commerce/catalog-search-service/pkg/paging"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// SearchClient defines the backend operations the searcher needs.
// This allows for easy mocking and testing.
type SearchClient interface {
	Search(ctx context.Context, index string, query []byte) (*SearchResponse, error)
	Ping(ctx context.Context) error
}

// ProductSearcher implements the port.ProductSearcher interface for
// OpenSearch.
type ProductSearcher struct {
	client SearchClient
	config Config
}

// QueryProducts renders the catalog query, including the facet aggregations,
// executes it and converts the response to domain objects.
func (s *ProductSearcher) QueryProducts(ctx context.Context, criteria model.SearchCriteria) (*model.SearchResult, error) {
	query, err := s.Render(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to render query: %w", err)
	}

	response, err := s.client.Search(ctx, s.config.Index, query)
	if err != nil {
		return nil, fmt.Errorf("opensearch search failed: %w", err)
	}

	result := s.convertResponse(ctx, response)

	pageToken, err := s.continuationToken(ctx, response, criteria.PageSize)
	if err != nil {
		return nil, err
	}
	result.PageToken = pageToken

	slog.DebugContext(ctx, "opensearch search completed",
		"hits", len(result.Products),
		"total", result.Total,
	)
	return result, nil
}

// Render generates the OpenSearch query body for the given criteria. The
// aggregation set built for the facet fields is attached verbatim; an empty
// field set attaches no aggregations at all.
func (s *ProductSearcher) Render(ctx context.Context, criteria model.SearchCriteria) ([]byte, error) {
	params := queryParams{
		PageSize:  criteria.PageSize,
		From:      (criteria.Page - 1) * criteria.PageSize,
		SortBy:    criteria.SortBy,
		SortOrder: criteria.SortOrder,
	}
	if criteria.Phrase != nil {
		params.Phrase = *criteria.Phrase
	}
	if criteria.TaxonCode != nil {
		params.TaxonCode = *criteria.TaxonCode
	}
	if criteria.SearchAfter != nil {
		params.SearchAfter = *criteria.SearchAfter
	}
	if params.SortBy == "" {
		params.SortBy = "_score"
		params.SortOrder = "desc"
	}
	if params.SortOrder == "" {
		params.SortOrder = "asc"
	}

	if aggs := buildAggregationSet(criteria.FacetFields); aggs != nil {
		encoded, err := json.Marshal(aggs)
		if err != nil {
			slog.ErrorContext(ctx, "failed to marshal aggregation set", "error", err)
			return nil, err
		}
		params.Aggregations = string(encoded)
	}

	var buf bytes.Buffer
	if err := queryProductTemplate.Execute(&buf, params); err != nil {
		slog.ErrorContext(ctx, "failed to render query template", "error", err)
		return nil, err
	}

	// Marshal roundtrip to validate and compact the rendered JSON.
	query, err := json.Marshal(json.RawMessage(buf.Bytes()))
	if err != nil {
		slog.ErrorContext(ctx, "rendered query is not valid JSON", "error", err)
		return nil, err
	}
	return query, nil
}

// convertResponse converts the backend response to the domain result.
// Hits that fail to decode are logged and skipped, never fatal.
func (s *ProductSearcher) convertResponse(ctx context.Context, response *SearchResponse) *model.SearchResult {
	result := &model.SearchResult{
		Products:     make([]model.Product, 0, len(response.Hits.Hits)),
		Total:        response.Hits.Total.Value,
		Aggregations: response.Aggregations,
	}

	for _, hit := range response.Hits.Hits {
		var product model.Product
		if err := json.Unmarshal(hit.Source, &product); err != nil {
			slog.ErrorContext(ctx, "failed to decode product hit",
				"hit_id", hit.ID,
				"error", err,
			)
			continue
		}
		if product.ID == "" {
			product.ID = hit.ID
		}
		result.Products = append(result.Products, product)
	}

	return result
}

// continuationToken emits an encrypted search_after token when the page of
// hits is full, meaning more results may exist.
func (s *ProductSearcher) continuationToken(ctx context.Context, response *SearchResponse, pageSize int) (*string, error) {
	if s.config.PageTokenSecret == nil {
		return nil, nil
	}
	hits := response.Hits.Hits
	if pageSize < 1 || len(hits) < pageSize {
		return nil, nil
	}

	last := hits[len(hits)-1]
	if last.Sort == nil {
		return nil, nil
	}

	token, err := paging.EncodePageToken(last.Sort, s.config.PageTokenSecret)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode page token", "error", err)
		return nil, err
	}
	return &token, nil
}

// IsReady checks if the search backend is reachable.
func (s *ProductSearcher) IsReady(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// NewSearcher returns a new OpenSearch-backed port.ProductSearcher.
func NewSearcher(ctx context.Context, config Config) (port.ProductSearcher, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("opensearch URL is required")
	}
	if config.Index == "" {
		return nil, fmt.Errorf("opensearch index is required")
	}

	client, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: []string{config.URL},
			Transport: &http.Transport{
				MaxIdleConnsPerHost:   10,
				ResponseHeaderTimeout: time.Second,
				DialContext:           (&net.Dialer{Timeout: 3 * time.Second}).DialContext,
			},
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create OpenSearch client", "error", err)
		return nil, fmt.Errorf("failed to create OpenSearch client: %w", err)
	}

	return &ProductSearcher{
		client: &apiClient{client: client},
		config: config,
	}, nil
}
