// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/MKhiriev/go-safe-preview/internal/adapter"
	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/linkcheck"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/metrics"
)

type imageService struct {
	web     adapter.WebClient
	maxSize int64

	logger *logger.Logger
}

func NewImageService(web adapter.WebClient, cfg config.Fetcher, logger *logger.Logger) ImageService {
	return &imageService{
		web:     web,
		maxSize: cfg.MaxImageSize,
		logger:  logger,
	}
}

// DownloadImage probes the image with HEAD and only downloads it when the
// declared size and type are acceptable. The body is cut off one byte past
// the limit in case the server lied about Content-Length.
func (s *imageService) DownloadImage(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := checkLink(rawURL)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "imageService.DownloadImage").
			Str("host", logger.URLHost(rawURL)).Msg("link rejected")
		return nil, err
	}

	data, err := s.download(ctx, u)
	metrics.Fetches.WithLabelValues(metrics.FetchImage, metrics.Outcome(err)).Inc()
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "imageService.DownloadImage").
			Str("host", u.Host()).Msg("image download failed")
		return nil, err
	}
	return data, nil
}

func (s *imageService) download(ctx context.Context, u linkcheck.URL) ([]byte, error) {
	info, err := s.web.Head(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("probe image: %w", err)
	}
	if info.ContentLength > s.maxSize {
		return nil, fmt.Errorf("%w: declared %d bytes", ErrImageTooLarge, info.ContentLength)
	}
	if !isImage(info.ContentType) {
		return nil, fmt.Errorf("%w: %q", ErrNotAnImage, info.ContentType)
	}

	body, _, err := s.web.Open(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read image: %w", adapter.ErrNetworkFailure, err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrImageTooLarge, s.maxSize)
	}
	return data, nil
}

func isImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.HasPrefix(mediaType, "image/")
}
