// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/models"
)

func newTestArtifactRepo(t *testing.T) (ArtifactRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewArtifactRepository(&DB{DB: db, logger: l}, l), mock
}

var testArtifact = models.Artifact{
	Ref:       "art-1",
	Path:      "/tmp/artifacts/art-1.enc",
	Scheme:    models.SchemeCBC,
	Size:      96,
	CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestArtifactRepository_Save(t *testing.T) {
	repo, mock := newTestArtifactRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO artifacts (ref,path,scheme,size,created_at) VALUES (?,?,?,?,?)")).
		WithArgs(testArtifact.Ref, testArtifact.Path, "cbc", testArtifact.Size, testArtifact.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), testArtifact))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArtifactRepository_Save_DBError(t *testing.T) {
	repo, mock := newTestArtifactRepo(t)

	mock.ExpectExec("INSERT INTO artifacts").WillReturnError(errors.New("disk I/O error"))

	err := repo.Save(context.Background(), testArtifact)
	require.ErrorIs(t, err, ErrExecutingQuery)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestArtifactRepository_Get(t *testing.T) {
	repo, mock := newTestArtifactRepo(t)

	rows := sqlmock.NewRows(artifactColumns).
		AddRow(testArtifact.Ref, testArtifact.Path, "cbc", testArtifact.Size, testArtifact.CreatedAt)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT ref, path, scheme, size, created_at FROM artifacts WHERE ref = ?")).
		WithArgs("art-1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "art-1")
	require.NoError(t, err)
	assert.Equal(t, testArtifact, got)
}

func TestArtifactRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestArtifactRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM artifacts").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestArtifactRepository_Get_ScanError(t *testing.T) {
	repo, mock := newTestArtifactRepo(t)

	rows := sqlmock.NewRows(artifactColumns).AddRow("art-1", "/p", "cbc", "not a number", testArtifact.CreatedAt)
	mock.ExpectQuery("SELECT (.+) FROM artifacts").WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "art-1")
	require.ErrorIs(t, err, ErrScanningRow)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestArtifactRepository_List(t *testing.T) {
	repo, mock := newTestArtifactRepo(t)

	rows := sqlmock.NewRows(artifactColumns).
		AddRow("b", "/p/b", "gcm", 10, testArtifact.CreatedAt.Add(time.Minute)).
		AddRow("a", "/p/a", "cbc", 20, testArtifact.CreatedAt)
	mock.ExpectQuery("SELECT (.+) FROM artifacts ORDER BY created_at DESC LIMIT 5").WillReturnRows(rows)

	got, err := repo.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Ref)
	assert.Equal(t, models.SchemeGCM, got[0].Scheme)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestArtifactRepository_Delete(t *testing.T) {
	repo, mock := newTestArtifactRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM artifacts WHERE ref = ?")).
		WithArgs("art-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "art-1"))

	mock.ExpectExec("DELETE FROM artifacts").
		WithArgs("art-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Delete(context.Background(), "art-1"), ErrArtifactNotFound)
}

// ── SQLite end to end ────────────────────────────────────────────────────────

func TestArtifactRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "registry", "artifacts.db")

	db, err := NewConnectSQLite(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	repo := NewArtifactRepository(db, logger.Nop())
	require.NoError(t, repo.Save(ctx, testArtifact))

	got, err := repo.Get(ctx, testArtifact.Ref)
	require.NoError(t, err)
	assert.Equal(t, testArtifact.Path, got.Path)
	assert.Equal(t, testArtifact.Scheme, got.Scheme)
	assert.True(t, testArtifact.CreatedAt.Equal(got.CreatedAt))

	require.Error(t, repo.Save(ctx, testArtifact), "duplicate ref")

	require.NoError(t, repo.Delete(ctx, testArtifact.Ref))
	_, err = repo.Get(ctx, testArtifact.Ref)
	require.ErrorIs(t, err, ErrArtifactNotFound)
}
