// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package taxonomy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
	"github.com/storefront-commerce/catalog-search-service/pkg/httpclient"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *HTTPResolver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &HTTPResolver{
		client: httpclient.NewClient(httpclient.Config{Timeout: 2 * time.Second}),
		config: Config{BaseURL: server.URL},
	}
}

func TestHTTPTaxonByCode(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/taxons/shoes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "shoes",
			"name": "Shoes",
			"level": 1,
			"children": [
				{"code": "running", "name": "Running", "level": 2}
			]
		}`))
	})

	taxon, err := resolver.TaxonByCode(context.Background(), "shoes")
	require.NoError(t, err)

	assert.Equal(t, &model.Taxon{
		Code:  "shoes",
		Name:  "Shoes",
		Level: 1,
		Children: []model.Taxon{
			{Code: "running", Name: "Running", Level: 2},
		},
	}, taxon)
}

func TestHTTPTaxonByCodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantAs  any
	}{
		{
			name: "missing taxon",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "not found", http.StatusNotFound)
			},
			wantAs: &errors.NotFound{},
		},
		{
			name: "empty body code",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			wantAs: &errors.NotFound{},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			wantAs: &errors.Unexpected{},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantAs: &errors.ServiceUnavailable{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := newTestResolver(t, tc.handler)

			_, err := resolver.TaxonByCode(context.Background(), "shoes")
			require.Error(t, err)
			assert.ErrorAs(t, err, tc.wantAs)
		})
	}
}

func TestHTTPIsReady(t *testing.T) {
	healthy := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, healthy.IsReady(context.Background()))

	down := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
	})
	assert.Error(t, down.IsReady(context.Background()))
}

func TestNewHTTPResolverValidation(t *testing.T) {
	_, err := NewHTTPResolver(Config{})
	assert.ErrorContains(t, err, "base URL is required")
}
