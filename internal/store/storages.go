// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
)

// Storages bundles every store the services depend on.
type Storages struct {
	SecretKeys SecretKeyStore
	Blobs      BlobStore
	Files      ArtifactFiles
	Artifacts  ArtifactRepository

	db *DB
}

// NewStorages opens the artifact registry, applies migrations and wires the
// file and memory stores.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect artifact registry: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		SecretKeys: NewSecretKeyStore(cfg.App.SecretKeyPath, log),
		Blobs:      NewBlobStore(),
		Files:      NewArtifactFiles(cfg.App.ArtifactDir),
		Artifacts:  NewArtifactRepository(db, log),
		db:         db,
	}, nil
}

// Close releases the registry connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
