// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds everything go-safe-preview keeps between calls: the
// secret key file, in-memory blob handles, encrypted artifact files and the
// SQLite registry that maps artifact refs to those files.
package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-safe-preview/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretKeyStore loads, or creates on first use, the persistent secret key.
type SecretKeyStore interface {
	// GetSecretKey returns the key stored at pathOverride, or at the
	// configured default path when pathOverride is empty. A missing file is
	// created with a fresh random key; concurrent first callers all get the
	// same key.
	GetSecretKey(ctx context.Context, pathOverride string) (models.SecretKey, error)
}

// BlobStore holds binary objects handed to the UI by reference.
type BlobStore interface {
	// Put stores data and returns a new "blob:<uuid>" ref.
	Put(ctx context.Context, contentType string, data []byte) (string, error)

	// Get returns the blob registered under ref or [ErrBlobNotFound].
	Get(ctx context.Context, ref string) (models.Blob, error)

	// Revoke drops ref. Revoking an unknown ref returns [ErrBlobNotFound].
	Revoke(ctx context.Context, ref string) error

	// Sweep drops every blob created before cutoff and returns how many
	// were dropped.
	Sweep(ctx context.Context, cutoff time.Time) int
}

// ArtifactFiles is the local file system under the artifact directory.
type ArtifactFiles interface {
	// Path returns name joined onto the artifact directory.
	Path(name string) string

	// Create truncates or creates path, creating parent directories. Close
	// syncs the file before closing it.
	Create(path string) (io.WriteCloser, error)

	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)

	// Remove deletes path. Any failure, a missing file included, wraps
	// [ErrDeleteFailed] and [ErrFileSystemFailure].
	Remove(path string) error
}

// ArtifactRepository is the registry of encrypted artifacts.
type ArtifactRepository interface {
	Save(ctx context.Context, artifact models.Artifact) error
	Get(ctx context.Context, ref string) (models.Artifact, error)
	List(ctx context.Context, limit uint64) ([]models.Artifact, error)
	Delete(ctx context.Context, ref string) error
}
