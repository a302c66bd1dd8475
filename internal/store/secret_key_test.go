// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/models"
)

const knownKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// ── GetSecretKey ─────────────────────────────────────────────────────────────

func TestGetSecretKey_CreatesOnFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "secret.key")
	s := NewSecretKeyStore(path, logger.Nop())

	key, err := s.GetSecretKey(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, key.IsZero())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(key.Passphrase()), string(data))
	assert.Len(t, data, 64)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestGetSecretKey_ReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")
	require.NoError(t, os.WriteFile(path, []byte(knownKeyHex+"\n"), 0o600))

	key, err := NewSecretKeyStore(path, logger.Nop()).GetSecretKey(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, knownKeyHex, string(key.Passphrase()))
}

func TestGetSecretKey_StableAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")

	first, err := NewSecretKeyStore(path, logger.Nop()).GetSecretKey(context.Background(), "")
	require.NoError(t, err)
	second, err := NewSecretKeyStore(path, logger.Nop()).GetSecretKey(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestGetSecretKey_PathOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "other.key")
	require.NoError(t, os.WriteFile(override, []byte(knownKeyHex), 0o600))

	s := NewSecretKeyStore(filepath.Join(dir, "default.key"), logger.Nop())
	key, err := s.GetSecretKey(context.Background(), override)
	require.NoError(t, err)
	assert.Equal(t, knownKeyHex, string(key.Passphrase()))

	_, err = os.Stat(filepath.Join(dir, "default.key"))
	assert.True(t, os.IsNotExist(err), "default key must not be created")
}

func TestGetSecretKey_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not hex", content: strings.Repeat("z", 64)},
		{name: "too short", content: knownKeyHex[:62]},
		{name: "empty", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "secret.key")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := NewSecretKeyStore(path, logger.Nop()).GetSecretKey(context.Background(), "")
			require.ErrorIs(t, err, ErrInvalidSecretKey)
		})
	}
}

func TestGetSecretKey_UnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	_, err := NewSecretKeyStore(filepath.Join(dir, "secret.key"), logger.Nop()).GetSecretKey(context.Background(), "")
	require.ErrorIs(t, err, ErrFileSystemFailure)
}

func TestGetSecretKey_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSecretKeyStore(filepath.Join(t.TempDir(), "secret.key"), logger.Nop()).GetSecretKey(ctx, "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestGetSecretKey_ConcurrentFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")
	shared := NewSecretKeyStore(path, logger.Nop())

	const callers = 16
	keys := make([]models.SecretKey, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// half share a store, half act like separate processes
			s := shared
			if i%2 == 1 {
				s = NewSecretKeyStore(path, logger.Nop())
			}
			keys[i], errs[i] = s.GetSecretKey(context.Background(), "")
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, keys[0].Bytes(), keys[i].Bytes(), "caller %d", i)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}
