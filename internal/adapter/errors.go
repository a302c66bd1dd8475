// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNetworkFailure wraps every transport error and non-2xx response.
	ErrNetworkFailure = errors.New("network failure")

	// ErrTooManyRedirects is returned when a fetch exceeds its redirect
	// budget.
	ErrTooManyRedirects = errors.New("too many redirects")
)
