// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/models"
)

// fileSecretKeyStore keeps each key as 64 hex characters in its own file
// and caches loaded keys per path for the life of the process.
type fileSecretKeyStore struct {
	defaultPath string
	random      io.Reader

	mu    sync.RWMutex
	cache map[string]models.SecretKey

	logger *logger.Logger
}

// NewSecretKeyStore returns a file-backed [SecretKeyStore] whose default key
// lives at defaultPath.
func NewSecretKeyStore(defaultPath string, log *logger.Logger) SecretKeyStore {
	return &fileSecretKeyStore{
		defaultPath: defaultPath,
		random:      rand.Reader,
		cache:       make(map[string]models.SecretKey),
		logger:      log,
	}
}

// GetSecretKey implements [SecretKeyStore].
func (s *fileSecretKeyStore) GetSecretKey(ctx context.Context, pathOverride string) (models.SecretKey, error) {
	if err := ctx.Err(); err != nil {
		return models.SecretKey{}, err
	}

	path := pathOverride
	if path == "" {
		path = s.defaultPath
	}
	path = filepath.Clean(path)

	s.mu.RLock()
	key, ok := s.cache[path]
	s.mu.RUnlock()
	if ok {
		return key, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok = s.cache[path]; ok {
		return key, nil
	}

	key, err := readKeyFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		key, err = s.createKeyFile(path)
	}
	if err != nil {
		return models.SecretKey{}, err
	}

	s.cache[path] = key
	return key, nil
}

func readKeyFile(path string) (models.SecretKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.SecretKey{}, err
		}
		return models.SecretKey{}, fmt.Errorf("%w: read secret key: %w", ErrFileSystemFailure, err)
	}

	key, err := models.ParseSecretKey(strings.TrimSpace(string(data)))
	if err != nil {
		return models.SecretKey{}, fmt.Errorf("%w: %s", ErrInvalidSecretKey, path)
	}
	return key, nil
}

// createKeyFile writes a new key to a temp file in the target directory and
// hard-links it into place. Link fails if another process got there first,
// in which case that process's key is used.
func (s *fileSecretKeyStore) createKeyFile(path string) (models.SecretKey, error) {
	raw := make([]byte, models.SecretKeySize)
	if _, err := io.ReadFull(s.random, raw); err != nil {
		return models.SecretKey{}, fmt.Errorf("generate secret key: %w", err)
	}
	key, err := models.NewSecretKey(raw)
	if err != nil {
		return models.SecretKey{}, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return models.SecretKey{}, fmt.Errorf("%w: create key dir: %w", ErrFileSystemFailure, err)
	}

	tmp, err := os.CreateTemp(dir, ".secret-*.tmp")
	if err != nil {
		return models.SecretKey{}, fmt.Errorf("%w: create temp key file: %w", ErrFileSystemFailure, err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(key.Passphrase())
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return models.SecretKey{}, fmt.Errorf("%w: write temp key file: %w", ErrFileSystemFailure, err)
	}

	if err := os.Link(tmp.Name(), path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			s.logger.Debug().Msg("secret key created concurrently, using existing file")
			return readKeyFile(path)
		}
		return models.SecretKey{}, fmt.Errorf("%w: install key file: %w", ErrFileSystemFailure, err)
	}

	s.logger.Info().Str("dir", dir).Msg("created new secret key")
	return key, nil
}
