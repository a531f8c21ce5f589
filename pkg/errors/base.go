// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package errors

import "fmt"

// base holds the fields shared by every error type in this package.
type base struct {
	message string
	err     error
}

// error renders the message for the base struct; every error type that
// embeds base shares this format.
func (b base) error() string {
	if b.err == nil {
		return b.message
	}
	return fmt.Sprintf("%s: %v", b.message, b.err)
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (b base) Unwrap() error {
	return b.err
}
