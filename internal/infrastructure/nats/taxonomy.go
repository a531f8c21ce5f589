// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/storefront-commerce/catalog-search-service/internal/domain/model"
	"github.com/storefront-commerce/catalog-search-service/internal/domain/port"
	"github.com/storefront-commerce/catalog-search-service/pkg/errors"
)

// TaxonomyResolver implements port.TaxonomyResolver over NATS request/reply
// against the taxonomy service.
type TaxonomyResolver struct {
	client  Requester
	subject string
}

// TaxonByCode looks up a taxon and its direct children.
func (r *TaxonomyResolver) TaxonByCode(ctx context.Context, code string) (*model.Taxon, error) {
	slog.DebugContext(ctx, "resolving taxon via NATS",
		"subject", r.subject,
		"code", code,
	)

	payload, err := json.Marshal(taxonLookupRequest{Code: code})
	if err != nil {
		return nil, errors.NewUnexpected("failed to marshal taxon lookup request", err)
	}

	data, err := r.client.Request(ctx, r.subject, payload)
	if err != nil {
		return nil, errors.NewServiceUnavailable("taxonomy service is unavailable", err)
	}

	var reply taxonReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, errors.NewUnexpected("invalid taxonomy service reply", err)
	}
	if reply.Code == "" {
		return nil, errors.NewNotFound(fmt.Sprintf("taxon %q not found", code))
	}

	return convertReply(reply), nil
}

// IsReady reports whether the NATS connection is established.
func (r *TaxonomyResolver) IsReady(ctx context.Context) error {
	return r.client.IsReady(ctx)
}

// Close gracefully closes the underlying connection.
func (r *TaxonomyResolver) Close() error {
	return r.client.Close()
}

func convertReply(reply taxonReply) *model.Taxon {
	taxon := &model.Taxon{
		Code:  reply.Code,
		Name:  reply.Name,
		Level: reply.Level,
	}
	for _, child := range reply.Children {
		taxon.Children = append(taxon.Children, *convertReply(child))
	}
	return taxon
}

// NewTaxonomyResolver creates a NATS-backed taxonomy resolver.
func NewTaxonomyResolver(ctx context.Context, config Config) (port.TaxonomyResolver, error) {
	client, err := NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS client: %w", err)
	}

	return &TaxonomyResolver{
		client:  client,
		subject: config.Subject,
	}, nil
}
