// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-safe-preview/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Previewer is the interactive part of the client.
type Previewer interface {
	Preview(ctx context.Context, rawURL string) (tui.Result, error)
}
