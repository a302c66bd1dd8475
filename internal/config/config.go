// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-safe-preview. It aggregates all sub-configurations and is populated by
// merging environment variables, command-line flags, an optional JSON or
// YAML file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable name below is read under [EnvPrefix].
type StructuredConfig struct {
	// App holds the secret key location, artifact settings and the
	// application version.
	App App `envPrefix:"APP_"`

	// Fetcher holds the limits of every outbound request.
	Fetcher Fetcher `envPrefix:"FETCHER_"`

	// Crypto holds key-derivation settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds the artifact registry database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the loopback HTTP boundary settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background blob sweeper settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file,
	// chosen by extension (.yaml/.yml, anything else is JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing. Only the CLI uses them.
	Args []string
}

// App holds application-level settings.
type App struct {
	// SecretKeyPath is the file holding the hex-encoded secret key. It is
	// created on first use.
	// Env: APP_SECRET_KEY_PATH
	SecretKeyPath string `env:"SECRET_KEY_PATH"`

	// ArtifactDir is where encrypted and decrypted images are written.
	// Env: APP_ARTIFACT_DIR
	ArtifactDir string `env:"ARTIFACT_DIR"`

	// BlobContentType is the content type declared on decrypted blobs.
	// Env: APP_BLOB_CONTENT_TYPE
	BlobContentType string `env:"BLOB_CONTENT_TYPE"`

	// CipherScheme is "cbc" (legacy layout) or "gcm" (authenticated).
	// Env: APP_CIPHER_SCHEME
	CipherScheme string `env:"CIPHER_SCHEME"`

	// AllowedDomains restricts metadata fetches to these hosts. Empty
	// means every host is allowed.
	// Env: APP_ALLOWED_DOMAINS (comma separated)
	AllowedDomains []string `env:"ALLOWED_DOMAINS" envSeparator:","`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Fetcher holds limits applied to outbound HTTP requests.
type Fetcher struct {
	// UserAgent is sent with every request. Some sites only serve preview
	// tags to known messenger agents.
	// Env: FETCHER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout bounds each outbound request.
	// Env: FETCHER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRedirects is followed by metadata fetches only.
	// Env: FETCHER_MAX_REDIRECTS
	MaxRedirects int `env:"MAX_REDIRECTS"`

	// MaxImageSize is the largest image, in bytes, that will be downloaded.
	// Env: FETCHER_MAX_IMAGE_SIZE
	MaxImageSize int64 `env:"MAX_IMAGE_SIZE"`

	// MaxPageSize caps how much of an HTML page is read.
	// Env: FETCHER_MAX_PAGE_SIZE
	MaxPageSize int64 `env:"MAX_PAGE_SIZE"`
}

// Crypto holds key-derivation settings.
type Crypto struct {
	// KDFConcurrency is how many scrypt derivations may run at once.
	// Env: CRYPTO_KDF_CONCURRENCY
	KDFConcurrency int64 `env:"KDF_CONCURRENCY"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the artifact registry database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite artifact registry.
type DB struct {
	// DSN is the SQLite data source name (a file path or "file:" URI).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the loopback HTTP boundary.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// SweepInterval is how often expired blobs are dropped.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// BlobTTL is how long a blob handle lives after creation.
	// Env: WORKERS_BLOB_TTL
	BlobTTL time.Duration `env:"BLOB_TTL"`
}

// GetStructuredConfig loads the configuration from the process environment
// and os.Args. See [Load].
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load merges, defaults and validates the configuration. For every field
// the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns an error if any source fails to load or the merged config fails
// validation.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
