// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-safe-preview/internal/adapter"
	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/crypto"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/metrics"
	"github.com/MKhiriev/go-safe-preview/internal/store"
	"github.com/MKhiriev/go-safe-preview/internal/utils"
	"github.com/MKhiriev/go-safe-preview/models"
)

const (
	// blobArtifactName is the fixed file EncryptImageFromBlob writes to.
	blobArtifactName = "encrypted.txt"

	artifactExt = ".enc"

	fileScheme  = "file://"
	httpsScheme = "https://"
)

type vaultService struct {
	pipeline  crypto.Pipeline
	web       adapter.WebClient
	keys      store.SecretKeyStore
	blobs     store.BlobStore
	files     store.ArtifactFiles
	artifacts store.ArtifactRepository
	refs      *utils.UUIDGenerator

	scheme      models.CipherScheme
	contentType string

	logger *logger.Logger
}

func NewVaultService(
	pipeline crypto.Pipeline,
	web adapter.WebClient,
	storages *store.Storages,
	cfg config.App,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		pipeline:    pipeline,
		web:         web,
		keys:        storages.SecretKeys,
		blobs:       storages.Blobs,
		files:       storages.Files,
		artifacts:   storages.Artifacts,
		refs:        utils.NewUUIDGenerator(),
		scheme:      models.CipherScheme(cfg.CipherScheme),
		contentType: cfg.BlobContentType,
		logger:      logger,
	}
}

// EncryptImage streams sourceURL into destPath. On failure the partial
// destination file is left in place.
func (v *vaultService) EncryptImage(ctx context.Context, sourceURL string, key models.SecretKey, destPath string) error {
	src, err := v.openSource(ctx, sourceURL)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = v.encryptTo(ctx, destPath, src, key)
	return err
}

func (v *vaultService) EncryptImageFromBlob(ctx context.Context, blobRef string, key models.SecretKey) (string, error) {
	blob, err := v.blobs.Get(ctx, blobRef)
	if err != nil {
		return "", err
	}

	path := v.files.Path(blobArtifactName)
	if _, err = v.encryptTo(ctx, path, bytes.NewReader(blob.Data), key); err != nil {
		return "", err
	}
	return path, nil
}

func (v *vaultService) DecryptImage(ctx context.Context, sourceURL string, key models.SecretKey, destPath string) error {
	src, err := v.openSource(ctx, sourceURL)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := v.files.Create(destPath)
	if err != nil {
		return err
	}

	n, err := v.pipeline.Decrypt(ctx, dst, src, key)
	closeErr := dst.Close()
	if err = v.observe(metrics.OpDecrypt, n, err); err != nil {
		return err
	}
	return closeErr
}

func (v *vaultService) DecryptImageToBlob(ctx context.Context, sourceURL string, key models.SecretKey) (string, error) {
	src, err := v.openSource(ctx, sourceURL)
	if err != nil {
		return "", err
	}
	defer src.Close()

	var buf bytes.Buffer
	n, err := v.pipeline.Decrypt(ctx, &buf, src, key)
	if err = v.observe(metrics.OpDecrypt, n, err); err != nil {
		return "", err
	}

	return v.blobs.Put(ctx, v.contentType, buf.Bytes())
}

func (v *vaultService) CleanupDecryptedFile(path string) error {
	return v.files.Remove(path)
}

func (v *vaultService) EncryptToArtifact(ctx context.Context, source string) (models.Artifact, error) {
	log := logger.FromContext(ctx)

	if err := artifactSource(source); err != nil {
		return models.Artifact{}, err
	}

	key, err := v.keys.GetSecretKey(ctx, "")
	if err != nil {
		return models.Artifact{}, err
	}

	src, err := v.openSource(ctx, source)
	if err != nil {
		return models.Artifact{}, err
	}
	defer src.Close()

	ref := v.refs.Generate()
	path := v.files.Path(ref + artifactExt)

	size, err := v.encryptTo(ctx, path, src, key)
	if err != nil {
		v.discard(ctx, path)
		return models.Artifact{}, err
	}

	artifact := models.Artifact{
		Ref:       ref,
		Path:      path,
		Scheme:    v.scheme,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
	if err = v.artifacts.Save(ctx, artifact); err != nil {
		v.discard(ctx, path)
		return models.Artifact{}, err
	}

	log.Info().Str("func", "vaultService.EncryptToArtifact").
		Str("ref", ref).Str("scheme", string(v.scheme)).Int64("size", size).
		Msg("artifact stored")
	return artifact, nil
}

func (v *vaultService) DecryptArtifactToBlob(ctx context.Context, ref string) (string, error) {
	artifact, err := v.artifacts.Get(ctx, ref)
	if err != nil {
		return "", err
	}

	key, err := v.keys.GetSecretKey(ctx, "")
	if err != nil {
		return "", err
	}

	return v.DecryptImageToBlob(ctx, artifact.Path, key)
}

func (v *vaultService) ListArtifacts(ctx context.Context, limit uint64) ([]models.Artifact, error) {
	return v.artifacts.List(ctx, limit)
}

func (v *vaultService) DeleteArtifact(ctx context.Context, ref string) error {
	artifact, err := v.artifacts.Get(ctx, ref)
	if err != nil {
		return err
	}
	if err = v.artifacts.Delete(ctx, ref); err != nil {
		return err
	}

	// a file that is already gone is not an error here
	if err = v.files.Remove(artifact.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (v *vaultService) encryptTo(ctx context.Context, path string, src io.Reader, key models.SecretKey) (int64, error) {
	dst, err := v.files.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := v.pipeline.Encrypt(ctx, dst, src, key, v.scheme)
	closeErr := dst.Close()
	if err = v.observe(metrics.OpEncrypt, n, err); err != nil {
		return n, err
	}
	return n, closeErr
}

func (v *vaultService) observe(op string, n int64, err error) error {
	if err != nil {
		metrics.CipherFailures.WithLabelValues(op).Inc()
		return err
	}
	metrics.CipherBytes.WithLabelValues(op, string(v.scheme)).Add(float64(n))
	return nil
}

func (v *vaultService) discard(ctx context.Context, path string) {
	if err := v.files.Remove(path); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "vaultService.discard").Msg("partial artifact not removed")
	}
}

// artifactSource rejects everything but blob refs and https links. Local
// files are only reachable through EncryptImage and DecryptImage.
func artifactSource(source string) error {
	if strings.HasPrefix(source, models.BlobRefPrefix) {
		return nil
	}
	if len(source) >= len(httpsScheme) && strings.EqualFold(source[:len(httpsScheme)], httpsScheme) {
		return nil
	}
	return fmt.Errorf("%w: artifacts take a blob ref or an https link", ErrUnsupportedSource)
}

// openSource opens a blob ref, an https link, a file:// URL or a bare path.
func (v *vaultService) openSource(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(source, models.BlobRefPrefix):
		blob, err := v.blobs.Get(ctx, source)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(blob.Data)), nil

	case strings.HasPrefix(source, fileScheme):
		u, err := url.Parse(source)
		if err != nil || u.Path == "" {
			return nil, fmt.Errorf("%w: bad file url", ErrUnsupportedSource)
		}
		return v.files.Open(u.Path)

	case strings.Contains(source, "://"):
		u, err := checkLink(source)
		if err != nil {
			return nil, err
		}
		body, _, err := v.web.Open(ctx, u)
		metrics.Fetches.WithLabelValues(metrics.FetchImage, metrics.Outcome(err)).Inc()
		if err != nil {
			return nil, err
		}
		return body, nil

	case source == "":
		return nil, fmt.Errorf("%w: empty source", ErrUnsupportedSource)

	default:
		return v.files.Open(source)
	}
}
