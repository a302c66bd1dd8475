// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// AppDirName is the per-user directory holding the key, the registry and
// the artifacts.
const AppDirName = "go-safe-preview"

// Built-in defaults.
const (
	DefaultUserAgent       = "WhatsApp/2.21.5.17 i"
	DefaultFetchTimeout    = 10 * time.Second
	DefaultMaxRedirects    = 3
	DefaultMaxImageSize    = 2 << 20
	DefaultMaxPageSize     = 5 << 20
	DefaultKDFConcurrency  = 2
	DefaultHTTPAddress     = "127.0.0.1:8421"
	DefaultServerTimeout   = time.Minute
	DefaultBlobContentType = "image/jpeg"
	DefaultCipherScheme    = "cbc"
	DefaultSweepInterval   = time.Minute
	DefaultBlobTTL         = 30 * time.Minute
)

// AppDir returns the per-user application directory. It falls back to a
// directory under the working directory when the OS reports no config dir.
func AppDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "." + AppDirName
	}
	return filepath.Join(base, AppDirName)
}

func defaultConfig() *StructuredConfig {
	dir := AppDir()
	return &StructuredConfig{
		App: App{
			SecretKeyPath:   filepath.Join(dir, "secret.key"),
			ArtifactDir:     filepath.Join(dir, "artifacts"),
			BlobContentType: DefaultBlobContentType,
			CipherScheme:    DefaultCipherScheme,
		},
		Fetcher: Fetcher{
			UserAgent:      DefaultUserAgent,
			RequestTimeout: DefaultFetchTimeout,
			MaxRedirects:   DefaultMaxRedirects,
			MaxImageSize:   DefaultMaxImageSize,
			MaxPageSize:    DefaultMaxPageSize,
		},
		Crypto: Crypto{
			KDFConcurrency: DefaultKDFConcurrency,
		},
		Storage: Storage{
			DB: DB{DSN: filepath.Join(dir, "artifacts.db")},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Workers: Workers{
			SweepInterval: DefaultSweepInterval,
			BlobTTL:       DefaultBlobTTL,
		},
	}
}
