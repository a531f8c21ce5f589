// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package constants

const (
	// DefaultPageSize is the default number of products per page.
	DefaultPageSize = 24

	// MaxPageSize bounds the per-request page size.
	MaxPageSize = 100

	// NonceSize is the secretbox nonce size used by the page token codec.
	NonceSize = 24
)
