// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/models"
)

const artifactsTable = "artifacts"

var artifactColumns = []string{"ref", "path", "scheme", "size", "created_at"}

type artifactRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewArtifactRepository returns an [ArtifactRepository] on top of db.
func NewArtifactRepository(db *DB, log *logger.Logger) ArtifactRepository {
	return &artifactRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

func (r *artifactRepository) Save(ctx context.Context, artifact models.Artifact) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(artifactsTable).
		Columns(artifactColumns...).
		Values(artifact.Ref, artifact.Path, string(artifact.Scheme), artifact.Size, artifact.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "artifactRepository.Save").
			Str("ref", artifact.Ref).
			Msg("failed to insert artifact")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *artifactRepository) Get(ctx context.Context, ref string) (models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(artifactColumns...).
		From(artifactsTable).
		Where(sq.Eq{"ref": ref}).
		ToSql()
	if err != nil {
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	artifact, err := scanArtifact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artifact{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, ref)
	}
	if err != nil {
		log.Err(err).
			Str("func", "artifactRepository.Get").
			Str("ref", ref).
			Msg("failed to read artifact")
		return models.Artifact{}, err
	}

	return artifact, nil
}

func (r *artifactRepository) List(ctx context.Context, limit uint64) ([]models.Artifact, error) {
	log := logger.FromContext(ctx)

	builder := r.builder.
		Select(artifactColumns...).
		From(artifactsTable).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "artifactRepository.List").Msg("failed to list artifacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var artifacts []models.Artifact
	for rows.Next() {
		artifact, err := scanArtifact(rows)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return artifacts, nil
}

func (r *artifactRepository) Delete(ctx context.Context, ref string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(artifactsTable).
		Where(sq.Eq{"ref": ref}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "artifactRepository.Delete").
			Str("ref", ref).
			Msg("failed to delete artifact")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrArtifactNotFound, ref)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (models.Artifact, error) {
	var (
		artifact models.Artifact
		scheme   string
	)
	err := row.Scan(&artifact.Ref, &artifact.Path, &scheme, &artifact.Size, &artifact.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artifact{}, err
	}
	if err != nil {
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	artifact.Scheme = models.CipherScheme(scheme)
	return artifact, nil
}
