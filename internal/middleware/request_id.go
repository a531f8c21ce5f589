// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/storefront-commerce/catalog-search-service/pkg/constants"
	"github.com/storefront-commerce/catalog-search-service/pkg/log"

	"github.com/google/uuid"
)

// RequestID adds a request ID to the context and response, reusing
// the one from the request header when present.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(string(constants.RequestIDHeader))
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(string(constants.RequestIDHeader), requestID)

			// Carried both as a context value and as an slog attribute
			// so all logs for this request include it.
			ctx := context.WithValue(r.Context(), constants.RequestIDHeader, requestID)
			ctx = log.AppendCtx(ctx, slog.String(string(constants.RequestIDHeader), requestID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
