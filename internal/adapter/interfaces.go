// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP capability used to fetch link
// previews and images.
//
// The primary abstraction is [WebClient], which decouples the service layer
// from resty. Every method takes a [linkcheck.URL], so nothing reaches the
// network without passing the link checks first; redirect targets are
// checked again before they are followed.
//
// Transport failures and non-2xx responses wrap [ErrNetworkFailure] so that
// callers can use [errors.Is] regardless of the cause.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-safe-preview/internal/linkcheck"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/web_client_mock.go -package=mock

// ResponseInfo is the subset of response metadata the gates look at.
type ResponseInfo struct {
	StatusCode  int
	ContentType string
	// ContentLength is -1 when the server did not send one.
	ContentLength int64
}

// Page is a fetched HTML document.
type Page struct {
	// FinalURL is the URL after redirects, used to resolve relative links.
	FinalURL string
	Body     []byte
}

// WebClient is the outbound HTTP capability.
type WebClient interface {
	// Head issues a HEAD request and returns the response metadata.
	Head(ctx context.Context, u linkcheck.URL) (ResponseInfo, error)

	// GetPage fetches a page following a bounded number of redirects. At
	// most the configured page size is read; the rest is dropped.
	GetPage(ctx context.Context, u linkcheck.URL) (Page, error)

	// Open issues a GET and returns the body as a stream. The caller must
	// close it.
	Open(ctx context.Context, u linkcheck.URL) (io.ReadCloser, ResponseInfo, error)
}
