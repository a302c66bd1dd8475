// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package linkcheck

import "errors"

var (
	// ErrMalformedURL is returned when a URL cannot be parsed or lacks the
	// parts needed to rebuild it (scheme and host).
	ErrMalformedURL = errors.New("malformed url")

	// ErrSuspiciousURL is returned by [Parse] when the validator rejects the
	// input. The concrete [Reason] is part of the wrapped message.
	ErrSuspiciousURL = errors.New("suspicious url")
)
