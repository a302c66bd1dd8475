// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body does not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidLimit is reported for a non-numeric limit query parameter.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
