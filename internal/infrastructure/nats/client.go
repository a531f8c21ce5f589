// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// Client wraps the NATS connection used for taxonomy lookups.
type Client struct {
	conn   *nats.Conn
	config Config
}

// Requester defines the request/reply operations the resolver needs.
// This allows for easy mocking and testing.
type Requester interface {
	Request(ctx context.Context, subject string, data []byte) ([]byte, error)
	IsReady(ctx context.Context) error
	Close() error
}

// Request sends a request on the given subject and waits for the reply.
func (c *Client) Request(ctx context.Context, subject string, data []byte) ([]byte, error) {
	if subject == "" || len(data) == 0 {
		return nil, fmt.Errorf("invalid NATS request: subject and data must be set")
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	reply, err := c.conn.RequestWithContext(ctx, subject, data)
	if err != nil {
		slog.ErrorContext(ctx, "NATS request failed",
			"subject", subject,
			"error", err,
		)
		return nil, fmt.Errorf("NATS request failed: %w", err)
	}

	slog.DebugContext(ctx, "received NATS reply",
		"subject", subject,
		"bytes", len(reply.Data),
	)
	return reply.Data, nil
}

// IsReady reports whether the NATS connection is established.
func (c *Client) IsReady(ctx context.Context) error {
	if c.conn == nil || c.conn.Status() != nats.CONNECTED {
		return fmt.Errorf("NATS connection is not established")
	}
	return nil
}

// Close gracefully closes the NATS connection.
func (c *Client) Close() error {
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

// NewClient creates a new NATS client with the given configuration.
func NewClient(ctx context.Context, config Config) (*Client, error) {
	slog.InfoContext(ctx, "creating NATS client",
		"url", config.URL,
		"timeout", config.Timeout,
	)

	opts := []nats.Option{
		nats.Name("catalog-search-service"),
		nats.Timeout(config.Timeout),
		nats.MaxReconnects(config.MaxReconnect),
		nats.ReconnectWait(config.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			slog.WarnContext(ctx, "NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.InfoContext(ctx, "NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			slog.InfoContext(ctx, "NATS connection closed")
		}),
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to NATS", "error", err)
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Client{
		conn:   conn,
		config: config,
	}, nil
}
