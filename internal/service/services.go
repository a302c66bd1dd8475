// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-safe-preview/internal/adapter"
	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/crypto"
	"github.com/MKhiriev/go-safe-preview/internal/linkcheck"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/metadata"
	"github.com/MKhiriev/go-safe-preview/internal/store"
	"github.com/MKhiriev/go-safe-preview/models"
)

type Services struct {
	MetadataService MetadataService
	ImageService    ImageService
	VaultService    VaultService
	BlobService     BlobService
	AppInfoService  AppInfoService
}

func NewServices(
	storages *store.Storages,
	web adapter.WebClient,
	pipeline crypto.Pipeline,
	cfg *config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	images := NewImageService(web, cfg.Fetcher, logger)
	policy := linkcheck.NewAllowList(cfg.App.AllowedDomains...)

	return &Services{
		MetadataService: NewMetadataService(web, metadata.NewExtractor(), images, storages.Blobs, policy, logger),
		ImageService:    images,
		VaultService:    NewVaultService(pipeline, web, storages, cfg.App, logger),
		BlobService:     NewBlobService(storages.Blobs, cfg.Workers.BlobTTL, logger),
		AppInfoService:  appInfo,
	}, nil
}
