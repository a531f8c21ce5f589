// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

type apiClient struct {
	client *opensearchapi.Client
}

func (c *apiClient) Search(ctx context.Context, index string, query []byte) (*SearchResponse, error) {

	slog.DebugContext(ctx, "executing opensearch search",
		"index", index,
		"query", string(query),
	)

	searchRequest := opensearchapi.SearchReq{
		Indices: []string{index},
		Body:    bytes.NewReader(query),
		Params: opensearchapi.SearchParams{
			Source: true,
			SourceIncludes: []string{
				"id",
				"code",
				"name",
				"slug",
				"description",
				"price",
				"currency",
				"taxons",
			},
		},
	}

	searchResponse, errSearch := c.client.Search(ctx, &searchRequest)
	if errSearch != nil {
		return nil, fmt.Errorf("failed to execute search: %w", errSearch)
	}
	if searchResponse.Errors {
		return nil, fmt.Errorf("opensearch search returned errors")
	}

	result := &SearchResponse{
		Hits: Hits{
			Total: Total{
				Value: searchResponse.Hits.Total.Value,
			},
			Hits: make([]Hit, len(searchResponse.Hits.Hits)),
		},
	}
	for i, hit := range searchResponse.Hits.Hits {
		result.Hits.Hits[i] = Hit{
			ID:     hit.ID,
			Source: hit.Source,
			Sort:   hit.Sort,
		}
	}

	if len(searchResponse.Aggregations) > 0 {
		if err := json.Unmarshal(searchResponse.Aggregations, &result.Aggregations); err != nil {
			// A malformed aggregation section degrades to "no facets"
			// rather than failing the whole search.
			slog.ErrorContext(ctx, "failed to decode aggregations", "error", err)
			result.Aggregations = nil
		}
	}

	return result, nil
}

func (c *apiClient) Ping(ctx context.Context) error {
	if _, err := c.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("opensearch ping failed: %w", err)
	}
	return nil
}
