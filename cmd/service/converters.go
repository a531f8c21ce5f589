// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/pkg/constants"
	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
	"github.com/storefront-commerce/catalog-search-service/pkg/paging"
)

// requestToCriteria converts query parameters to domain search criteria.
func (a *CatalogAPI) requestToCriteria(ctx context.Context, r *http.Request) (model.SearchCriteria, error) {
	query := r.URL.Query()

	criteria := model.SearchCriteria{
		FacetFields: a.facetFields,
		Page:        1,
		PageSize:    constants.DefaultPageSize,
	}

	if phrase := query.Get("q"); phrase != "" {
		criteria.Phrase = &phrase
	}
	if taxon := query.Get("taxon"); taxon != "" {
		criteria.TaxonCode = &taxon
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return criteria, errors.NewValidation("page must be a positive integer")
		}
		criteria.Page = page
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return criteria, errors.NewValidation("limit must be a positive integer")
		}
		criteria.PageSize = limit
	}

	switch query.Get("sort") {
	case "name_asc":
		criteria.SortBy = "name.keyword"
		criteria.SortOrder = "asc"
	case "name_desc":
		criteria.SortBy = "name.keyword"
		criteria.SortOrder = "desc"
	case "price_asc":
		criteria.SortBy = "price"
		criteria.SortOrder = "asc"
	case "price_desc":
		criteria.SortBy = "price"
		criteria.SortOrder = "desc"
	}

	if token := query.Get("page_token"); token != "" {
		if a.tokenSecret == nil {
			return criteria, errors.NewValidation("page tokens are not enabled")
		}
		searchAfter, err := paging.DecodePageToken(ctx, token, a.tokenSecret)
		if err != nil {
			slog.ErrorContext(ctx, "failed to decode page token", "error", err)
			return criteria, err
		}
		criteria.PageToken = &token
		criteria.SearchAfter = &searchAfter
	}

	return criteria, nil
}
