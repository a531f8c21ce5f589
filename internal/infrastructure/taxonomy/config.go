// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package taxonomy

import (
	"github.com/storefront-commerce/catalog-search-service/pkg/httpclient"
)

// Config represents the taxonomy API configuration.
type Config struct {
	// BaseURL is the base URL of the taxonomy HTTP API.
	BaseURL string
	// HTTPConfig configures the underlying HTTP client.
	HTTPConfig httpclient.Config
}
