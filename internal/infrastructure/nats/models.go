// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package nats

import (
	"time"
)

// Config represents NATS configuration.
type Config struct {
	// URL is the NATS server URL.
	URL string `json:"url"`
	// Subject is the request/reply subject of the taxonomy service.
	Subject string `json:"subject"`
	// Timeout is the request timeout duration.
	Timeout time.Duration `json:"timeout"`
	// MaxReconnect is the maximum number of reconnection attempts.
	MaxReconnect int `json:"max_reconnect"`
	// ReconnectWait is the time to wait between reconnection attempts.
	ReconnectWait time.Duration `json:"reconnect_wait"`
}

// taxonLookupRequest is the request payload sent to the taxonomy service.
type taxonLookupRequest struct {
	Code string `json:"code"`
}

// taxonReply is the taxonomy service response for a single taxon.
type taxonReply struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Level    int          `json:"level"`
	Children []taxonReply `json:"children"`
}
