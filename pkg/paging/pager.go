// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package paging

// Pager paginates a fixed window of already-fetched items backed by a larger
// total result count. The backend returns at most one page of items per
// search, so the pager is constructed over that window plus the overall hit
// count and never re-fetches.
type Pager[T any] struct {
	items []T
	total int
	size  int
	page  int
}

// NewPager creates a pager over a fetched window. A non-positive size or page
// is clamped to 1, matching the tolerance expected of pagination adapters.
func NewPager[T any](items []T, total, size, page int) *Pager[T] {
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}
	return &Pager[T]{items: items, total: total, size: size, page: page}
}

// Count returns the total number of items across all pages.
func (p *Pager[T]) Count() int {
	return p.total
}

// Page returns the 1-based current page number.
func (p *Pager[T]) Page() int {
	return p.page
}

// Pages returns the total number of pages.
func (p *Pager[T]) Pages() int {
	if p.total == 0 {
		return 0
	}
	return (p.total + p.size - 1) / p.size
}

// Slice returns up to length items of the fetched window starting at offset.
// Out-of-range requests return an empty slice rather than failing.
func (p *Pager[T]) Slice(offset, length int) []T {
	if offset < 0 || length <= 0 || offset >= len(p.items) {
		return []T{}
	}
	end := offset + length
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[offset:end]
}

// Current returns the items of the current page. When the requested page is
// beyond the last page, the result is empty.
func (p *Pager[T]) Current() []T {
	if p.page > p.Pages() {
		return []T{}
	}
	return p.Slice(0, p.size)
}

// HasNext reports whether a page follows the current one.
func (p *Pager[T]) HasNext() bool {
	return p.page < p.Pages()
}
