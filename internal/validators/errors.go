// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyURL      = errors.New("url is required")
	ErrNoImageSource = errors.New("either ref or url is required")
	ErrNotBlobRef    = errors.New("ref must be a blob ref")
	ErrNotHTTPSLink  = errors.New("url must be an https link")
	ErrEmptyRef      = errors.New("ref is required")
	ErrRefTooLong    = errors.New("ref is too long")
)
