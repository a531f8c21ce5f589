// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
)

type errorResponse struct {
	Message string `json:"message"`
}

// writeError maps domain error types to HTTP status codes and writes a JSON
// error body.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch e := err.(type) {
	case errors.Validation:
		status = http.StatusBadRequest
		message = e.Error()
	case errors.NotFound:
		status = http.StatusNotFound
		message = e.Error()
	case errors.ServiceUnavailable:
		status = http.StatusServiceUnavailable
		message = e.Error()
	}

	slog.ErrorContext(ctx, "request failed",
		"status", status,
		"error", err,
	)
	writeJSON(ctx, w, status, errorResponse{Message: message})
}

// writeJSON writes body as a JSON response with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
