// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/mock"
	"github.com/MKhiriev/go-safe-preview/internal/service"
)

// recordingWorker appends its id to a shared slice on Run.
type recordingWorker struct {
	id    int
	order *[]int
}

func (r *recordingWorker) Run(context.Context) {
	*r.order = append(*r.order, r.id)
}

// ── Workers ──────────────────────────────────────────────────────────────────

func TestWorkers_Run_InOrder(t *testing.T) {
	var order []int
	ws := &Workers{workers: []Worker{
		&recordingWorker{id: 1, order: &order},
		&recordingWorker{id: 2, order: &order},
		&recordingWorker{id: 3, order: &order},
	}}

	ws.Run(context.Background())

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() { (&Workers{}).Run(context.Background()) })
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{BlobService: mock.NewMockBlobService(ctrl)}

	ws := NewWorkers(services, config.Workers{SweepInterval: time.Minute}, logger.Nop())
	require.Len(t, ws.workers, 1)
	assert.IsType(t, &BlobSweeper{}, ws.workers[0])
}

// ── BlobSweeper ──────────────────────────────────────────────────────────────

func TestBlobSweeper_SweepsUntilCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobService(ctrl)

	swept := make(chan struct{}, 8)
	blobs.EXPECT().SweepExpired(gomock.Any()).DoAndReturn(func(context.Context) int {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 1
	}).MinTimes(2)

	s := NewBlobSweeper(blobs, 5*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	s.Run(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-swept:
		case <-time.After(2 * time.Second):
			t.Fatal("sweeper did not tick")
		}
	}

	cancel()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestBlobSweeper_StopsBeforeFirstTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobService(ctrl)

	s := NewBlobSweeper(blobs, time.Hour, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Run(ctx)

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
