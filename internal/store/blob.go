// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-safe-preview/models"
)

type memoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]models.Blob
	now   func() time.Time
}

// NewBlobStore returns an in-memory [BlobStore].
func NewBlobStore() BlobStore {
	return &memoryBlobStore{
		blobs: make(map[string]models.Blob),
		now:   time.Now,
	}
}

// Put implements [BlobStore]. data is owned by the store afterwards.
func (m *memoryBlobStore) Put(_ context.Context, contentType string, data []byte) (string, error) {
	ref := models.BlobRefPrefix + uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[ref] = models.Blob{
		Ref:         ref,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   m.now(),
	}
	return ref, nil
}

// Get implements [BlobStore].
func (m *memoryBlobStore) Get(_ context.Context, ref string) (models.Blob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[ref]
	if !ok {
		return models.Blob{}, fmt.Errorf("%w: %s", ErrBlobNotFound, ref)
	}
	return blob, nil
}

// Revoke implements [BlobStore].
func (m *memoryBlobStore) Revoke(_ context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[ref]; !ok {
		return fmt.Errorf("%w: %s", ErrBlobNotFound, ref)
	}
	delete(m.blobs, ref)
	return nil
}

// Sweep implements [BlobStore].
func (m *memoryBlobStore) Sweep(_ context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := 0
	for ref, blob := range m.blobs {
		if blob.CreatedAt.Before(cutoff) {
			delete(m.blobs, ref)
			dropped++
		}
	}
	return dropped
}
