// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/service"
)

// BlobSweeper periodically drops preview blobs older than the configured
// TTL.
type BlobSweeper struct {
	blobs    service.BlobService
	interval time.Duration
	logger   *logger.Logger

	done chan struct{}
}

func NewBlobSweeper(blobs service.BlobService, interval time.Duration, logger *logger.Logger) *BlobSweeper {
	return &BlobSweeper{
		blobs:    blobs,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (s *BlobSweeper) Run(ctx context.Context) {
	go s.loop(ctx)
}

// Done is closed once the sweeper has stopped.
func (s *BlobSweeper) Done() <-chan struct{} {
	return s.done
}

func (s *BlobSweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str("func", "*BlobSweeper.loop").Msg("blob sweeper stopped")
			return
		case <-ticker.C:
			if n := s.blobs.SweepExpired(ctx); n > 0 {
				s.logger.Debug().Str("func", "*BlobSweeper.loop").Int("swept", n).Msg("expired blobs dropped")
			}
		}
	}
}
