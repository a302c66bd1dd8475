// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8421", want: NetAddress{Host: "localhost", Port: 8421}},
		{name: "loopback ip", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "127.0.0.1:0", expectError: true},
		{name: "port out of range", input: "127.0.0.1:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "/tmp/registry.db",
		"-config", "/etc/preview.yaml",
		"-key", "/keys/secret.key",
		"-artifacts", "/var/artifacts",
		"-scheme", "gcm",
		"-allow", "messenger.com, www.google.com,",
		"-user-agent", "agent",
		"-fetch-timeout", "3s",
		"-max-image-size", "1024",
		"-request-timeout", "1m",
		"-kdf-concurrency", "3",
		"-sweep-interval", "10s",
		"-blob-ttl", "5m",
		"https://example.com/article",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/registry.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/preview.yaml", cfg.FilePath)
	assert.Equal(t, "/keys/secret.key", cfg.App.SecretKeyPath)
	assert.Equal(t, "/var/artifacts", cfg.App.ArtifactDir)
	assert.Equal(t, "gcm", cfg.App.CipherScheme)
	assert.Equal(t, []string{"messenger.com", "www.google.com"}, cfg.App.AllowedDomains)
	assert.Equal(t, "agent", cfg.Fetcher.UserAgent)
	assert.Equal(t, 3*time.Second, cfg.Fetcher.RequestTimeout)
	assert.EqualValues(t, 1024, cfg.Fetcher.MaxImageSize)
	assert.EqualValues(t, 3, cfg.Crypto.KDFConcurrency)
	assert.Equal(t, 10*time.Second, cfg.Workers.SweepInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.BlobTTL)
	assert.Equal(t, []string{"https://example.com/article"}, cfg.Args)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Nil(t, cfg.App.AllowedDomains)
	assert.Empty(t, cfg.Args)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"-a", "not-an-address"}},
		{name: "bad duration", args: []string{"-fetch-timeout", "soon"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
