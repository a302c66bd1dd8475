// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML files. Durations
// are written as strings ("10s", "1m").
type fileConfig struct {
	App struct {
		SecretKeyPath   string   `json:"secret_key_path" yaml:"secret_key_path"`
		ArtifactDir     string   `json:"artifact_dir" yaml:"artifact_dir"`
		BlobContentType string   `json:"blob_content_type" yaml:"blob_content_type"`
		CipherScheme    string   `json:"cipher_scheme" yaml:"cipher_scheme"`
		AllowedDomains  []string `json:"allowed_domains" yaml:"allowed_domains"`
		Version         string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Fetcher struct {
		UserAgent      string   `json:"user_agent" yaml:"user_agent"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		MaxRedirects   int      `json:"max_redirects" yaml:"max_redirects"`
		MaxImageSize   int64    `json:"max_image_size" yaml:"max_image_size"`
		MaxPageSize    int64    `json:"max_page_size" yaml:"max_page_size"`
	} `json:"fetcher,omitempty" yaml:"fetcher,omitempty"`

	Crypto struct {
		KDFConcurrency int64 `json:"kdf_concurrency" yaml:"kdf_concurrency"`
	} `json:"crypto,omitempty" yaml:"crypto,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval" yaml:"sweep_interval"`
		BlobTTL       Duration `json:"blob_ttl" yaml:"blob_ttl"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			SecretKeyPath:   fc.App.SecretKeyPath,
			ArtifactDir:     fc.App.ArtifactDir,
			BlobContentType: fc.App.BlobContentType,
			CipherScheme:    fc.App.CipherScheme,
			AllowedDomains:  fc.App.AllowedDomains,
			Version:         fc.App.Version,
		},
		Fetcher: Fetcher{
			UserAgent:      fc.Fetcher.UserAgent,
			RequestTimeout: time.Duration(fc.Fetcher.RequestTimeout),
			MaxRedirects:   fc.Fetcher.MaxRedirects,
			MaxImageSize:   fc.Fetcher.MaxImageSize,
			MaxPageSize:    fc.Fetcher.MaxPageSize,
		},
		Crypto:  Crypto{KDFConcurrency: fc.Crypto.KDFConcurrency},
		Storage: Storage{DB: DB{DSN: fc.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(fc.Workers.SweepInterval),
			BlobTTL:       time.Duration(fc.Workers.BlobTTL),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h", "30s" in both JSON and YAML. Bare numbers are
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
