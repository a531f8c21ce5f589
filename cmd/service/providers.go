// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/port"
	"github.com/storefront-commerce/catalog-search-service/internal/infrastructure/cache"
	"github.com/storefront-commerce/catalog-search-service/internal/infrastructure/i18n"
	"github.com/storefront-commerce/catalog-search-service/internal/infrastructure/mock"
	"github.com/storefront-commerce/catalog-search-service/internal/infrastructure/nats"
	"github.com/storefront-commerce/catalog-search-service/internal/infrastructure/opensearch"
	"github.com/storefront-commerce/catalog-search-service/internal/infrastructure/taxonomy"
	"github.com/storefront-commerce/catalog-search-service/pkg/httpclient"
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// SearcherImpl injects the product searcher implementation.
func SearcherImpl(ctx context.Context, tokenSecret *[32]byte) port.ProductSearcher {
	switch source := getenv("SEARCH_SOURCE", "opensearch"); source {
	case "mock":
		slog.InfoContext(ctx, "initializing mock product searcher")
		return mock.NewProductSearcher()

	case "opensearch":
		config := opensearch.Config{
			URL:             getenv("OPENSEARCH_URL", "http://localhost:9200"),
			Index:           getenv("OPENSEARCH_INDEX", "products"),
			PageTokenSecret: tokenSecret,
		}
		slog.InfoContext(ctx, "initializing opensearch product searcher",
			"url", config.URL,
			"index", config.Index,
		)
		searcher, err := opensearch.NewSearcher(ctx, config)
		if err != nil {
			log.Fatalf("failed to initialize OpenSearch searcher: %v", err)
		}
		return searcher

	default:
		log.Fatalf("unsupported search implementation: %s", source)
		return nil
	}
}

// TaxonomyImpl injects the taxonomy resolver implementation.
func TaxonomyImpl(ctx context.Context) port.TaxonomyResolver {
	switch source := getenv("TAXONOMY_SOURCE", "nats"); source {
	case "mock":
		slog.InfoContext(ctx, "initializing mock taxonomy resolver")
		return mock.NewTaxonomyResolver()

	case "nats":
		config := nats.Config{
			URL:           getenv("NATS_URL", "nats://localhost:4222"),
			Subject:       getenv("NATS_TAXONOMY_SUBJECT", "catalog.taxonomy.lookup"),
			Timeout:       10 * time.Second,
			MaxReconnect:  3,
			ReconnectWait: 2 * time.Second,
		}
		slog.InfoContext(ctx, "initializing NATS taxonomy resolver",
			"url", config.URL,
			"subject", config.Subject,
		)
		resolver, err := nats.NewTaxonomyResolver(ctx, config)
		if err != nil {
			log.Fatalf("failed to initialize NATS taxonomy resolver: %v", err)
		}
		return resolver

	case "http":
		config := taxonomy.Config{
			BaseURL:    os.Getenv("TAXONOMY_API_URL"),
			HTTPConfig: httpclient.DefaultConfig(),
		}
		slog.InfoContext(ctx, "initializing HTTP taxonomy resolver",
			"url", config.BaseURL,
		)
		resolver, err := taxonomy.NewHTTPResolver(config)
		if err != nil {
			log.Fatalf("failed to initialize HTTP taxonomy resolver: %v", err)
		}
		return resolver

	default:
		log.Fatalf("unsupported taxonomy implementation: %s", source)
		return nil
	}
}

// TranslatorImpl injects the label translator implementation.
func TranslatorImpl(ctx context.Context) port.Translator {
	path := os.Getenv("MESSAGES_FILE")
	if path == "" {
		slog.InfoContext(ctx, "no message catalog configured, using built-in labels")
		return i18n.NewStaticTranslator(map[string]string{
			"app.ui.taxon": "Category",
		})
	}

	translator, err := i18n.NewTranslator(path)
	if err != nil {
		log.Fatalf("failed to load message catalog: %v", err)
	}
	return translator
}

// CacheImpl injects the optional search result cache. Returns nil when no
// Redis URL is configured, which disables caching.
func CacheImpl(ctx context.Context) port.SearchCache {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil
	}

	ttl := time.Minute
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid CACHE_TTL: %v", err)
		}
		ttl = parsed
	}

	searchCache, err := cache.NewRedisCache(ctx, cache.Config{URL: redisURL, TTL: ttl})
	if err != nil {
		log.Fatalf("failed to initialize redis cache: %v", err)
	}
	return searchCache
}

// FacetFields returns the filterable attribute fields from catalog
// configuration.
func FacetFields() []string {
	raw := getenv("FACET_FIELDS", "brand,color,size,material")

	fields := []string{}
	for _, field := range strings.Split(raw, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// PageTokenSecret reads the 32-byte secret used to encrypt continuation
// tokens. An empty value disables deep pagination tokens.
func PageTokenSecret() *[32]byte {
	raw := os.Getenv("PAGE_TOKEN_SECRET")
	if raw == "" {
		return nil
	}
	if len(raw) != 32 {
		log.Fatalf("PAGE_TOKEN_SECRET must be exactly 32 bytes, got %d", len(raw))
	}

	var secret [32]byte
	copy(secret[:], raw)
	return &secret
}
