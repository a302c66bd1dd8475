// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable before
// anything is started. Every failure wraps one of the Err*Configs values.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.App.SecretKeyPath == "" || cfg.App.ArtifactDir == "":
		return fmt.Errorf("%w: secret key path and artifact dir are required", ErrInvalidAppConfigs)
	case cfg.App.CipherScheme != "cbc" && cfg.App.CipherScheme != "gcm":
		return fmt.Errorf("%w: unknown cipher scheme %q", ErrInvalidAppConfigs, cfg.App.CipherScheme)
	case !strings.Contains(cfg.App.BlobContentType, "/"):
		return fmt.Errorf("%w: blob content type %q", ErrInvalidAppConfigs, cfg.App.BlobContentType)
	}

	switch {
	case cfg.Fetcher.UserAgent == "":
		return fmt.Errorf("%w: empty user agent", ErrInvalidFetcherConfigs)
	case cfg.Fetcher.RequestTimeout <= 0:
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidFetcherConfigs)
	case cfg.Fetcher.MaxRedirects < 0:
		return fmt.Errorf("%w: negative redirect limit", ErrInvalidFetcherConfigs)
	case cfg.Fetcher.MaxImageSize <= 0 || cfg.Fetcher.MaxPageSize <= 0:
		return fmt.Errorf("%w: size limits must be positive", ErrInvalidFetcherConfigs)
	}

	if cfg.Crypto.KDFConcurrency < 1 {
		return fmt.Errorf("%w: kdf concurrency must be at least 1", ErrInvalidCryptoConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if !isLoopback(cfg.Server.HTTPAddress) {
		return fmt.Errorf("%w: %q is not a loopback address", ErrInvalidServerConfigs, cfg.Server.HTTPAddress)
	}

	if cfg.Workers.SweepInterval <= 0 || cfg.Workers.BlobTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// isLoopback reports whether addr (host:port) binds to loopback only. An
// empty host listens on every interface and is rejected.
func isLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
