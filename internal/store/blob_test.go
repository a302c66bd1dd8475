// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-safe-preview/models"
)

func TestBlobStore_PutGetRevoke(t *testing.T) {
	ctx := context.Background()
	s := NewBlobStore()

	ref, err := s.Put(ctx, "image/png", []byte("png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, models.BlobRefPrefix))

	blob, err := s.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, ref, blob.Ref)
	assert.Equal(t, "image/png", blob.ContentType)
	assert.Equal(t, []byte("png"), blob.Data)

	require.NoError(t, s.Revoke(ctx, ref))

	_, err = s.Get(ctx, ref)
	require.ErrorIs(t, err, ErrBlobNotFound)
	require.ErrorIs(t, s.Revoke(ctx, ref), ErrBlobNotFound)
}

func TestBlobStore_UniqueRefs(t *testing.T) {
	s := NewBlobStore()
	seen := make(map[string]bool)
	for range 100 {
		ref, err := s.Put(context.Background(), "", nil)
		require.NoError(t, err)
		require.False(t, seen[ref])
		seen[ref] = true
	}
}

func TestBlobStore_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := &memoryBlobStore{blobs: map[string]models.Blob{}, now: func() time.Time { return now }}

	old, _ := s.Put(ctx, "image/jpeg", []byte("old"))
	now = now.Add(time.Hour)
	fresh, _ := s.Put(ctx, "image/jpeg", []byte("fresh"))

	assert.Equal(t, 1, s.Sweep(ctx, now.Add(-30*time.Minute)))

	_, err := s.Get(ctx, old)
	require.ErrorIs(t, err, ErrBlobNotFound)
	_, err = s.Get(ctx, fresh)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Sweep(ctx, now.Add(-30*time.Minute)))
}
