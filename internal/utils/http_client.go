// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(nil)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient. When hc is nil the underlying
// resty.Client gets its own default transport; otherwise it reuses hc, which
// is how tests point the client at a TLS test server.
//
// Each call returns an independent client instance with its own
// configuration and state.
func NewHTTPClient(hc *http.Client) *HTTPClient {
	if hc == nil {
		return &HTTPClient{Client: resty.New()}
	}
	return &HTTPClient{Client: resty.NewWithClient(hc)}
}
