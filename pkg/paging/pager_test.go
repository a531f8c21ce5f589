// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{name: "empty result", total: 0, size: 24, want: 0},
		{name: "exact multiple", total: 48, size: 24, want: 2},
		{name: "partial last page", total: 53, size: 24, want: 3},
		{name: "single item", total: 1, size: 24, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPager([]string{}, tc.total, tc.size, 1)
			assert.Equal(t, tc.want, p.Pages())
		})
	}
}

func TestPagerCurrent(t *testing.T) {
	window := []string{"a", "b", "c"}

	tests := []struct {
		name string
		page int
		want []string
	}{
		{name: "first page", page: 1, want: []string{"a", "b", "c"}},
		{name: "out of range page is empty", page: 9, want: []string{}},
		{name: "non-positive page clamps to one", page: 0, want: []string{"a", "b", "c"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPager(window, 10, 3, tc.page)
			assert.Equal(t, tc.want, p.Current())
		})
	}
}

func TestPagerSlice(t *testing.T) {
	p := NewPager([]int{1, 2, 3, 4, 5}, 5, 5, 1)

	tests := []struct {
		name   string
		offset int
		length int
		want   []int
	}{
		{name: "full window", offset: 0, length: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "middle", offset: 1, length: 2, want: []int{2, 3}},
		{name: "length past the end is trimmed", offset: 3, length: 10, want: []int{4, 5}},
		{name: "offset past the end", offset: 7, length: 2, want: []int{}},
		{name: "negative offset", offset: -1, length: 2, want: []int{}},
		{name: "zero length", offset: 0, length: 0, want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Slice(tc.offset, tc.length))
		})
	}
}

func TestPagerHasNext(t *testing.T) {
	assertion := assert.New(t)

	assertion.True(NewPager([]int{1}, 30, 10, 1).HasNext())
	assertion.False(NewPager([]int{1}, 30, 10, 3).HasNext())
	assertion.False(NewPager([]int{}, 0, 10, 1).HasNext())
}
