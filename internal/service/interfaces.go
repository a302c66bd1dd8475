// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements link previews and the encrypted image
// exchange on top of the adapter, crypto and store layers.
package service

import (
	"context"

	"github.com/MKhiriev/go-safe-preview/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MetadataService builds link previews.
type MetadataService interface {
	// GetMetaData validates rawURL, fetches the page and extracts its
	// preview tags. A relative image is resolved against the final page URL
	// and dropped when it fails the link checks.
	GetMetaData(ctx context.Context, rawURL string) (*models.LinkMetadata, error)

	// ScrapeWithPreview is GetMetaData plus a best-effort image download
	// registered as a blob. Image failures leave PreviewBlobRef nil.
	ScrapeWithPreview(ctx context.Context, rawURL string) (*models.LinkMetadata, error)
}

// ImageService downloads preview images under size and type limits.
type ImageService interface {
	DownloadImage(ctx context.Context, rawURL string) ([]byte, error)
}

// VaultService encrypts images at rest and decrypts them for display.
//
// A source is a "blob:" ref, an https link, a file:// URL or a local path.
type VaultService interface {
	EncryptImage(ctx context.Context, sourceURL string, key models.SecretKey, destPath string) error
	EncryptImageFromBlob(ctx context.Context, blobRef string, key models.SecretKey) (string, error)
	DecryptImage(ctx context.Context, sourceURL string, key models.SecretKey, destPath string) error
	DecryptImageToBlob(ctx context.Context, sourceURL string, key models.SecretKey) (string, error)
	CleanupDecryptedFile(path string) error

	// EncryptToArtifact encrypts source with the stored secret key and
	// registers the result under a new artifact ref. Only blob refs and
	// https links are accepted; anything else is ErrUnsupportedSource.
	EncryptToArtifact(ctx context.Context, source string) (models.Artifact, error)

	// DecryptArtifactToBlob decrypts a registered artifact into a blob.
	DecryptArtifactToBlob(ctx context.Context, ref string) (string, error)

	ListArtifacts(ctx context.Context, limit uint64) ([]models.Artifact, error)

	// DeleteArtifact unregisters ref and removes its file.
	DeleteArtifact(ctx context.Context, ref string) error
}

// BlobService serves and expires blob handles.
type BlobService interface {
	GetBlob(ctx context.Context, ref string) (models.Blob, error)
	RevokeBlob(ctx context.Context, ref string) error

	// SweepExpired drops blobs older than the configured TTL and returns
	// how many were dropped.
	SweepExpired(ctx context.Context) int
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
