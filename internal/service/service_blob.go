// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/metrics"
	"github.com/MKhiriev/go-safe-preview/internal/store"
	"github.com/MKhiriev/go-safe-preview/models"
)

type blobService struct {
	blobs store.BlobStore
	ttl   time.Duration
	now   func() time.Time

	logger *logger.Logger
}

func NewBlobService(blobs store.BlobStore, ttl time.Duration, logger *logger.Logger) BlobService {
	return &blobService{
		blobs:  blobs,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

func (s *blobService) GetBlob(ctx context.Context, ref string) (models.Blob, error) {
	return s.blobs.Get(ctx, ref)
}

func (s *blobService) RevokeBlob(ctx context.Context, ref string) error {
	return s.blobs.Revoke(ctx, ref)
}

func (s *blobService) SweepExpired(ctx context.Context) int {
	dropped := s.blobs.Sweep(ctx, s.now().Add(-s.ttl))
	if dropped > 0 {
		metrics.BlobsSwept.Add(float64(dropped))
		s.logger.Debug().Str("func", "blobService.SweepExpired").Int("dropped", dropped).Msg("expired blobs swept")
	}
	return dropped
}
