// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-safe-preview/internal/adapter"
	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/crypto"
	"github.com/MKhiriev/go-safe-preview/internal/linkcheck"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/mock"
	"github.com/MKhiriev/go-safe-preview/internal/store"
	"github.com/MKhiriev/go-safe-preview/models"
)

var plainImage = bytes.Repeat([]byte("\xff\xd8\xff\xe0 jpeg body "), 300)

type vaultFixture struct {
	svc       VaultService
	dir       string
	key       models.SecretKey
	blobs     store.BlobStore
	web       *mock.MockWebClient
	keys      *mock.MockSecretKeyStore
	artifacts *mock.MockArtifactRepository
}

func newTestVault(t *testing.T, scheme models.CipherScheme) vaultFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	raw := make([]byte, models.SecretKeySize)
	for i := range raw {
		raw[i] = byte(i)
	}
	key, err := models.NewSecretKey(raw)
	require.NoError(t, err)

	// scrypt is covered in the crypto package; a fixed derived key keeps
	// these tests fast.
	kdf := mock.NewMockKeyDeriver(ctrl)
	kdf.EXPECT().Derive(gomock.Any(), gomock.Any()).Return(bytes.Repeat([]byte{7}, 32), nil).AnyTimes()

	f := vaultFixture{
		dir:       t.TempDir(),
		key:       key,
		blobs:     store.NewBlobStore(),
		web:       mock.NewMockWebClient(ctrl),
		keys:      mock.NewMockSecretKeyStore(ctrl),
		artifacts: mock.NewMockArtifactRepository(ctrl),
	}
	storages := &store.Storages{
		SecretKeys: f.keys,
		Blobs:      f.blobs,
		Files:      store.NewArtifactFiles(f.dir),
		Artifacts:  f.artifacts,
	}
	cfg := config.App{CipherScheme: string(scheme), BlobContentType: "image/jpeg"}
	f.svc = NewVaultService(crypto.NewPipeline(kdf, crypto.WithChunkSize(100)), f.web, storages, cfg, logger.Nop())
	return f
}

func (f vaultFixture) writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// ── EncryptImage / DecryptImage ──────────────────────────────────────────────

func TestEncryptImage_WritesHexIVHeader(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)
	src := f.writeFile(t, "plain.jpg", plainImage)
	dest := filepath.Join(f.dir, "out", "image.enc")

	require.NoError(t, f.svc.EncryptImage(context.Background(), src, f.key, dest))

	enc, err := os.ReadFile(dest)
	require.NoError(t, err)
	_, err = hex.DecodeString(string(enc[:crypto.HeaderSize]))
	require.NoError(t, err, "header must be hex")
	assert.Equal(t, 0, (len(enc)-crypto.HeaderSize)%16)
	assert.Greater(t, len(enc)-crypto.HeaderSize, len(plainImage))
}

func TestEncryptDecrypt_FileRoundTrip(t *testing.T) {
	for _, scheme := range []models.CipherScheme{models.SchemeCBC, models.SchemeGCM} {
		t.Run(string(scheme), func(t *testing.T) {
			f := newTestVault(t, scheme)
			ctx := context.Background()
			src := f.writeFile(t, "plain.jpg", plainImage)
			enc := filepath.Join(f.dir, "image.enc")
			dec := filepath.Join(f.dir, "image.dec.jpg")

			require.NoError(t, f.svc.EncryptImage(ctx, "file://"+src, f.key, enc))
			require.NoError(t, f.svc.DecryptImage(ctx, enc, f.key, dec))

			got, err := os.ReadFile(dec)
			require.NoError(t, err)
			assert.Equal(t, plainImage, got)

			require.NoError(t, f.svc.CleanupDecryptedFile(dec))
			_, err = os.Stat(dec)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestEncryptImage_FromHTTPS(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)
	ctx := context.Background()

	f.web.EXPECT().Open(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u linkcheck.URL) (io.ReadCloser, adapter.ResponseInfo, error) {
			assert.Equal(t, "cdn.example.com", u.Host())
			return io.NopCloser(bytes.NewReader(plainImage)), adapter.ResponseInfo{StatusCode: 200}, nil
		})

	enc := filepath.Join(f.dir, "remote.enc")
	require.NoError(t, f.svc.EncryptImage(ctx, "https://cdn.example.com/a.jpg", f.key, enc))

	ref, err := f.svc.DecryptImageToBlob(ctx, enc, f.key)
	require.NoError(t, err)
	blob, err := f.blobs.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, plainImage, blob.Data)
}

func TestEncryptImage_RejectsSuspiciousSource(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)

	err := f.svc.EncryptImage(context.Background(), "http://cdn.example.com/a.jpg", f.key, filepath.Join(f.dir, "x.enc"))
	require.ErrorIs(t, err, linkcheck.ErrSuspiciousURL)
}

func TestEncryptImage_MissingSource(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)

	err := f.svc.EncryptImage(context.Background(), filepath.Join(f.dir, "nope.jpg"), f.key, filepath.Join(f.dir, "x.enc"))
	require.ErrorIs(t, err, store.ErrFileSystemFailure)

	err = f.svc.EncryptImage(context.Background(), "", f.key, filepath.Join(f.dir, "x.enc"))
	require.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestDecryptImageToBlob_TamperedSealedStream(t *testing.T) {
	f := newTestVault(t, models.SchemeGCM)
	ctx := context.Background()
	src := f.writeFile(t, "plain.jpg", plainImage)
	enc := filepath.Join(f.dir, "image.enc")
	require.NoError(t, f.svc.EncryptImage(ctx, src, f.key, enc))

	// flip one ciphertext byte
	data, err := os.ReadFile(enc)
	require.NoError(t, err)
	data[len(data)-1] ^= 1
	require.NoError(t, os.WriteFile(enc, data, 0o600))

	_, err = f.svc.DecryptImageToBlob(ctx, enc, f.key)
	require.ErrorIs(t, err, crypto.ErrCipherFailure)
}

// ── blobs ────────────────────────────────────────────────────────────────────

func TestEncryptImageFromBlob_FixedArtifactName(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)
	ctx := context.Background()

	blobRef, err := f.blobs.Put(ctx, "image/png", plainImage)
	require.NoError(t, err)

	path, err := f.svc.EncryptImageFromBlob(ctx, blobRef, f.key)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.dir, "encrypted.txt"), path)

	// decryptable, unlike the artifacts of the old blob flow
	decRef, err := f.svc.DecryptImageToBlob(ctx, path, f.key)
	require.NoError(t, err)
	blob, err := f.blobs.Get(ctx, decRef)
	require.NoError(t, err)
	assert.Equal(t, plainImage, blob.Data)
	assert.Equal(t, "image/jpeg", blob.ContentType)
}

func TestEncryptImageFromBlob_UnknownBlob(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)

	_, err := f.svc.EncryptImageFromBlob(context.Background(), "blob:missing", f.key)
	require.ErrorIs(t, err, store.ErrBlobNotFound)
}

func TestDecryptImageToBlob_Undersized(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)
	src := f.writeFile(t, "short.enc", []byte(strings.Repeat("0", crypto.HeaderSize-1)))

	_, err := f.svc.DecryptImageToBlob(context.Background(), src, f.key)
	require.ErrorIs(t, err, crypto.ErrCipherFailure)
}

// ── CleanupDecryptedFile ─────────────────────────────────────────────────────

func TestCleanupDecryptedFile_Missing(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)

	err := f.svc.CleanupDecryptedFile(filepath.Join(f.dir, "gone.jpg"))
	require.ErrorIs(t, err, store.ErrDeleteFailed)
	require.ErrorIs(t, err, store.ErrFileSystemFailure)
}

// ── artifacts ────────────────────────────────────────────────────────────────

func TestEncryptToArtifact_RoundTrip(t *testing.T) {
	f := newTestVault(t, models.SchemeGCM)
	ctx := context.Background()

	blobRef, err := f.blobs.Put(ctx, "image/jpeg", plainImage)
	require.NoError(t, err)

	var saved models.Artifact
	f.keys.EXPECT().GetSecretKey(gomock.Any(), "").Return(f.key, nil).Times(2)
	f.artifacts.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Artifact) error {
			saved = a
			return nil
		})

	artifact, err := f.svc.EncryptToArtifact(ctx, blobRef)
	require.NoError(t, err)
	assert.Equal(t, saved, artifact)
	assert.Equal(t, models.SchemeGCM, artifact.Scheme)
	assert.Equal(t, filepath.Join(f.dir, artifact.Ref+".enc"), artifact.Path)

	info, err := os.Stat(artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), artifact.Size)

	f.artifacts.EXPECT().Get(gomock.Any(), artifact.Ref).Return(saved, nil)

	decRef, err := f.svc.DecryptArtifactToBlob(ctx, artifact.Ref)
	require.NoError(t, err)
	blob, err := f.blobs.Get(ctx, decRef)
	require.NoError(t, err)
	assert.Equal(t, plainImage, blob.Data)
}

func TestEncryptToArtifact_SaveFailureRemovesFile(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)
	ctx := context.Background()
	src, err := f.blobs.Put(ctx, "image/jpeg", plainImage)
	require.NoError(t, err)

	var path string
	f.keys.EXPECT().GetSecretKey(gomock.Any(), "").Return(f.key, nil)
	f.artifacts.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Artifact) error {
			path = a.Path
			return store.ErrExecutingQuery
		})

	_, err = f.svc.EncryptToArtifact(ctx, src)
	require.ErrorIs(t, err, store.ErrExecutingQuery)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestEncryptToArtifact_RejectsLocalSources(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)
	secret := f.writeFile(t, "id_rsa", []byte("PRIVATE KEY MATERIAL"))

	tests := []struct {
		name   string
		source string
	}{
		{name: "bare path", source: secret},
		{name: "file url", source: "file://" + secret},
		{name: "relative path", source: "id_rsa"},
		{name: "plain http", source: "http://a.b/i.png"},
		{name: "empty", source: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// neither the key store nor the registry may be touched
			_, err := f.svc.EncryptToArtifact(context.Background(), tt.source)
			require.ErrorIs(t, err, ErrUnsupportedSource)
		})
	}

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no artifact file may be written")
}

func TestEncryptToArtifact_HTTPSLinkIsChecked(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)

	f.keys.EXPECT().GetSecretKey(gomock.Any(), "").Return(f.key, nil)

	_, err := f.svc.EncryptToArtifact(context.Background(), "https://u:p@a.b/i.png")
	require.ErrorIs(t, err, linkcheck.ErrSuspiciousURL)
}

func TestEncryptToArtifact_KeyFailure(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)

	f.keys.EXPECT().GetSecretKey(gomock.Any(), "").Return(models.SecretKey{}, store.ErrInvalidSecretKey)

	_, err := f.svc.EncryptToArtifact(context.Background(), "blob:any")
	require.ErrorIs(t, err, store.ErrInvalidSecretKey)
}

func TestDecryptArtifactToBlob_NotFound(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)

	f.artifacts.EXPECT().Get(gomock.Any(), "nope").Return(models.Artifact{}, store.ErrArtifactNotFound)

	_, err := f.svc.DecryptArtifactToBlob(context.Background(), "nope")
	require.ErrorIs(t, err, store.ErrArtifactNotFound)
}

func TestDeleteArtifact(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)
	ctx := context.Background()
	path := f.writeFile(t, "a.enc", []byte("x"))
	artifact := models.Artifact{Ref: "a", Path: path, Scheme: models.SchemeCBC}

	f.artifacts.EXPECT().Get(gomock.Any(), "a").Return(artifact, nil).Times(2)
	f.artifacts.EXPECT().Delete(gomock.Any(), "a").Return(nil).Times(2)

	require.NoError(t, f.svc.DeleteArtifact(ctx, "a"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// file already gone
	require.NoError(t, f.svc.DeleteArtifact(ctx, "a"))
}

func TestListArtifacts(t *testing.T) {
	f := newTestVault(t, models.SchemeCBC)
	want := []models.Artifact{{Ref: "b"}, {Ref: "a"}}

	f.artifacts.EXPECT().List(gomock.Any(), uint64(10)).Return(want, nil)

	got, err := f.svc.ListArtifacts(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
