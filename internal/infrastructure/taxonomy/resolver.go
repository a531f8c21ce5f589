// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/internal/domain/port"
	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
	"github.com/storefront-commerce/catalog-search-service/pkg/httpclient"
)

// HTTPResolver implements port.TaxonomyResolver against the taxonomy
// HTTP API.
type HTTPResolver struct {
	client *httpclient.Client
	config Config
}

// TaxonByCode fetches a taxon and its direct children from the API.
func (r *HTTPResolver) TaxonByCode(ctx context.Context, code string) (*model.Taxon, error) {
	endpoint := fmt.Sprintf("%s/taxons/%s", strings.TrimRight(r.config.BaseURL, "/"), url.PathEscape(code))

	slog.DebugContext(ctx, "resolving taxon via HTTP",
		"url", endpoint,
	)

	response, err := r.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		URL:    endpoint,
	})
	if err != nil {
		if statusErr, ok := err.(*httpclient.StatusError); ok && statusErr.StatusCode == http.StatusNotFound {
			return nil, errors.NewNotFound(fmt.Sprintf("taxon %q not found", code))
		}
		return nil, errors.NewServiceUnavailable("taxonomy API request failed", err)
	}

	var body taxonResponse
	if err := json.Unmarshal(response.Body, &body); err != nil {
		return nil, errors.NewUnexpected("invalid taxonomy API response", err)
	}
	if body.Code == "" {
		return nil, errors.NewNotFound(fmt.Sprintf("taxon %q not found", code))
	}

	return convertResponse(body), nil
}

// IsReady probes the taxonomy API root.
func (r *HTTPResolver) IsReady(ctx context.Context) error {
	_, err := r.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		URL:    strings.TrimRight(r.config.BaseURL, "/") + "/health",
	})
	if err != nil {
		return errors.NewServiceUnavailable("taxonomy API is unavailable", err)
	}
	return nil
}

func convertResponse(body taxonResponse) *model.Taxon {
	taxon := &model.Taxon{
		Code:  body.Code,
		Name:  body.Name,
		Level: body.Level,
	}
	for _, child := range body.Children {
		taxon.Children = append(taxon.Children, *convertResponse(child))
	}
	return taxon
}

// NewHTTPResolver creates an HTTP-backed taxonomy resolver.
func NewHTTPResolver(config Config) (port.TaxonomyResolver, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("taxonomy API base URL is required")
	}
	return &HTTPResolver{
		client: httpclient.NewClient(config.HTTPConfig),
		config: config,
	}, nil
}
