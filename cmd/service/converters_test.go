// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-commerce/catalog-search-service/pkg/constants"
	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
	"github.com/storefront-commerce/catalog-search-service/pkg/paging"
)

func testAPI(secret *[32]byte) *CatalogAPI {
	return &CatalogAPI{
		facetFields: []string{"color", "size"},
		tokenSecret: secret,
	}
}

func TestRequestToCriteria(t *testing.T) {
	api := testAPI(nil)

	tests := []struct {
		name          string
		target        string
		expectedError bool
	}{
		{name: "defaults", target: "/products"},
		{name: "full query", target: "/products?q=runner&taxon=shoes&page=2&limit=12&sort=price_desc"},
		{name: "zero page", target: "/products?page=0", expectedError: true},
		{name: "non-numeric page", target: "/products?page=abc", expectedError: true},
		{name: "zero limit", target: "/products?limit=0", expectedError: true},
		{name: "non-numeric limit", target: "/products?limit=many", expectedError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tc.target, nil)
			criteria, err := api.requestToCriteria(context.Background(), request)

			if tc.expectedError {
				require.Error(t, err)
				assert.ErrorAs(t, err, &errors.Validation{})
				return
			}
			require.NoError(t, err)

			assertion := assert.New(t)
			switch tc.name {
			case "defaults":
				assertion.Nil(criteria.Phrase)
				assertion.Nil(criteria.TaxonCode)
				assertion.Equal(1, criteria.Page)
				assertion.Equal(constants.DefaultPageSize, criteria.PageSize)
				assertion.Equal([]string{"color", "size"}, criteria.FacetFields)
				assertion.Empty(criteria.SortBy)
			case "full query":
				require.NotNil(t, criteria.Phrase)
				assertion.Equal("runner", *criteria.Phrase)
				require.NotNil(t, criteria.TaxonCode)
				assertion.Equal("shoes", *criteria.TaxonCode)
				assertion.Equal(2, criteria.Page)
				assertion.Equal(12, criteria.PageSize)
				assertion.Equal("price", criteria.SortBy)
				assertion.Equal("desc", criteria.SortOrder)
			}
		})
	}
}

func TestRequestToCriteriaSortMapping(t *testing.T) {
	api := testAPI(nil)

	tests := []struct {
		sort      string
		wantBy    string
		wantOrder string
	}{
		{sort: "name_asc", wantBy: "name.keyword", wantOrder: "asc"},
		{sort: "name_desc", wantBy: "name.keyword", wantOrder: "desc"},
		{sort: "price_asc", wantBy: "price", wantOrder: "asc"},
		{sort: "price_desc", wantBy: "price", wantOrder: "desc"},
		{sort: "unknown", wantBy: "", wantOrder: ""},
	}

	for _, tc := range tests {
		t.Run(tc.sort, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/products?sort="+tc.sort, nil)
			criteria, err := api.requestToCriteria(context.Background(), request)
			require.NoError(t, err)

			assert.Equal(t, tc.wantBy, criteria.SortBy)
			assert.Equal(t, tc.wantOrder, criteria.SortOrder)
		})
	}
}

func TestRequestToCriteriaPageToken(t *testing.T) {
	var secret [32]byte
	copy(secret[:], "0123456789abcdef0123456789abcdef")

	t.Run("valid token decodes to a cursor", func(t *testing.T) {
		token, err := paging.EncodePageToken([]any{1.5, "prod-1"}, &secret)
		require.NoError(t, err)

		api := testAPI(&secret)
		request := httptest.NewRequest("GET", "/products?page_token="+token, nil)

		criteria, err := api.requestToCriteria(context.Background(), request)
		require.NoError(t, err)
		require.NotNil(t, criteria.SearchAfter)
		assert.JSONEq(t, `[1.5, "prod-1"]`, *criteria.SearchAfter)
		require.NotNil(t, criteria.PageToken)
		assert.Equal(t, token, *criteria.PageToken)
	})

	t.Run("tokens rejected when not enabled", func(t *testing.T) {
		api := testAPI(nil)
		request := httptest.NewRequest("GET", "/products?page_token=abc", nil)

		_, err := api.requestToCriteria(context.Background(), request)
		require.Error(t, err)
		assert.ErrorAs(t, err, &errors.Validation{})
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		api := testAPI(&secret)
		request := httptest.NewRequest("GET", "/products?page_token=garbage!!", nil)

		_, err := api.requestToCriteria(context.Background(), request)
		require.Error(t, err)
		assert.ErrorAs(t, err, &errors.Validation{})
	})
}
