// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package paging

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/storefront-commerce/catalog-search-service/pkg/constants"
	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

// EncodePageToken encrypts a JSON-serializable search_after value with
// secretbox and returns an opaque base64 continuation token.
func EncodePageToken(searchAfter any, secretKey *[32]byte) (string, error) {
	encoded, err := json.Marshal(searchAfter)
	if err != nil {
		return "", errors.NewUnexpected("failed to marshal search_after value", err)
	}

	var nonce [constants.NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.NewUnexpected("failed to generate nonce for page token", err)
	}

	encrypted := secretbox.Seal(nonce[:], encoded, &nonce, secretKey)
	return base64.RawURLEncoding.EncodeToString(encrypted), nil
}

// DecodePageToken takes a base64-encoded, secretbox-encrypted token and
// returns the search_after JSON it carries. Returns a Validation error if
// decoding or decryption fails.
func DecodePageToken(ctx context.Context, encoded string, secretKey *[32]byte) (string, error) {
	encrypted, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.NewValidation("invalid encoded page token", err)
	}

	if len(encrypted) < constants.NonceSize+secretbox.Overhead {
		return "", errors.NewValidation(
			"invalid page token length",
			fmt.Errorf("expected at least %d bytes, got %d", constants.NonceSize+secretbox.Overhead, len(encrypted)),
		)
	}

	var nonce [constants.NonceSize]byte
	copy(nonce[:], encrypted[:constants.NonceSize])
	decrypted, ok := secretbox.Open(nil, encrypted[constants.NonceSize:], &nonce, secretKey)
	if !ok {
		return "", errors.NewValidation("failed to decrypt page token")
	}

	// Re-marshal to normalize the JSON.
	normalized, err := json.Marshal(json.RawMessage(decrypted))
	if err != nil {
		return "", errors.NewValidation("page token does not carry valid JSON", err)
	}

	slog.DebugContext(ctx, "decoded page token",
		"search_after", string(normalized),
	)
	return string(normalized), nil
}
