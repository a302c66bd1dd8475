// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-safe-preview/internal/adapter"
	"github.com/MKhiriev/go-safe-preview/internal/linkcheck"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/metadata"
	"github.com/MKhiriev/go-safe-preview/internal/metrics"
	"github.com/MKhiriev/go-safe-preview/internal/store"
	"github.com/MKhiriev/go-safe-preview/models"
)

type metadataService struct {
	web       adapter.WebClient
	extractor metadata.Extractor
	images    ImageService
	blobs     store.BlobStore
	policy    linkcheck.DomainPolicy

	logger *logger.Logger
}

func NewMetadataService(
	web adapter.WebClient,
	extractor metadata.Extractor,
	images ImageService,
	blobs store.BlobStore,
	policy linkcheck.DomainPolicy,
	logger *logger.Logger,
) MetadataService {
	return &metadataService{
		web:       web,
		extractor: extractor,
		images:    images,
		blobs:     blobs,
		policy:    policy,
		logger:    logger,
	}
}

func (s *metadataService) GetMetaData(ctx context.Context, rawURL string) (*models.LinkMetadata, error) {
	log := logger.FromContext(ctx)
	host := logger.URLHost(rawURL)

	u, err := checkLink(rawURL)
	if err != nil {
		log.Warn().Err(err).Str("func", "metadataService.GetMetaData").Str("host", host).Msg("link rejected")
		return nil, err
	}
	if !s.policy.Allowed(u.Host()) {
		log.Warn().Str("func", "metadataService.GetMetaData").Str("host", host).Msg("domain not allowed")
		return nil, fmt.Errorf("%w: %s", ErrDomainNotAllowed, u.Host())
	}

	// The sanitized form of a valid link is itself valid.
	sanitized, err := linkcheck.Parse(u.Sanitized())
	if err != nil {
		return nil, err
	}

	page, err := s.web.GetPage(ctx, sanitized)
	metrics.Fetches.WithLabelValues(metrics.FetchPage, metrics.Outcome(err)).Inc()
	if err != nil {
		log.Debug().Err(err).Str("func", "metadataService.GetMetaData").Str("host", host).Msg("page fetch failed")
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}

	md, err := s.extractor.Extract(bytes.NewReader(page.Body), page.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("%w: extract metadata: %w", adapter.ErrNetworkFailure, err)
	}

	if md.ImageURL != nil && linkcheck.IsLinkSuspicious(*md.ImageURL) {
		log.Debug().Str("func", "metadataService.GetMetaData").Str("host", host).Msg("dropping suspicious preview image")
		md.ImageURL = nil
	}

	return &md, nil
}

func (s *metadataService) ScrapeWithPreview(ctx context.Context, rawURL string) (*models.LinkMetadata, error) {
	md, err := s.GetMetaData(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if !md.HasImage() {
		return md, nil
	}

	log := logger.FromContext(ctx)

	data, err := s.images.DownloadImage(ctx, *md.ImageURL)
	if err != nil {
		log.Debug().Err(err).Str("func", "metadataService.ScrapeWithPreview").
			Str("host", logger.URLHost(*md.ImageURL)).Msg("preview image skipped")
		return md, nil
	}

	ref, err := s.blobs.Put(ctx, http.DetectContentType(data), data)
	if err != nil {
		log.Err(err).Str("func", "metadataService.ScrapeWithPreview").Msg("failed to register preview blob")
		return md, nil
	}

	withPreview := md.WithPreviewBlob(ref)
	return &withPreview, nil
}
