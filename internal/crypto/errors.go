// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrCipherFailure is the umbrella error of the package: every failure to
// derive a key, set up a cipher or decrypt a stream wraps it.
var ErrCipherFailure = errors.New("cipher failure")

var (
	errShortHeader     = errors.New("stream shorter than its header")
	errBadHeader       = errors.New("header is not a hex iv")
	errBadPadding      = errors.New("invalid padding")
	errPartialBlock    = errors.New("ciphertext is not a multiple of the block size")
	errTruncated       = errors.New("sealed stream is truncated")
	errTrailingData    = errors.New("data after the final sealed segment")
	errSegmentTooLong  = errors.New("sealed segment exceeds the maximum size")
	errSegmentTooShort = errors.New("sealed segment is shorter than its tag")
	errAuth            = errors.New("message authentication failed")
	errUnknownScheme   = errors.New("unknown cipher scheme")
)
