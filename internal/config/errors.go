// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application settings
	// (for example, an unknown cipher scheme).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidFetcherConfigs indicates invalid outbound request limits.
	ErrInvalidFetcherConfigs = errors.New("invalid fetcher configuration")
	// ErrInvalidCryptoConfigs indicates invalid key-derivation settings.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates a missing registry DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing or non-loopback listen
	// address, or a missing timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
