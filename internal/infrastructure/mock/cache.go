// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"sync"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
)

// SearchCache is an in-memory implementation of port.SearchCache.
type SearchCache struct {
	mu      sync.Mutex
	entries map[string]*model.ProductSearchResult
	getErr  error
	setErr  error
}

// NewSearchCache creates an empty in-memory cache.
func NewSearchCache() *SearchCache {
	return &SearchCache{
		entries: make(map[string]*model.ProductSearchResult),
	}
}

// Get implements port.SearchCache.
func (m *SearchCache) Get(ctx context.Context, key string) (*model.ProductSearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.entries[key], nil
}

// Set implements port.SearchCache.
func (m *SearchCache) Set(ctx context.Context, key string, result *model.ProductSearchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = result
	return nil
}

// Len returns the number of cached entries.
func (m *SearchCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// SetGetError makes Get fail with err.
func (m *SearchCache) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// SetSetError makes Set fail with err.
func (m *SearchCache) SetSetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}
