// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package port

// Translator resolves translatable label keys to display strings.
// Implementations fall back to the key itself when no message exists.
type Translator interface {
	Translate(key string) string
}
