// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type localArtifactFiles struct {
	dir string
}

// NewArtifactFiles returns [ArtifactFiles] rooted at dir. The directory is
// created lazily by Create.
func NewArtifactFiles(dir string) ArtifactFiles {
	return &localArtifactFiles{dir: dir}
}

func (l *localArtifactFiles) Path(name string) string {
	return filepath.Join(l.dir, name)
}

func (l *localArtifactFiles) Create(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("%w: create artifact dir: %w", ErrFileSystemFailure, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrFileSystemFailure, filepath.Base(path), err)
	}
	return syncingFile{f}, nil
}

func (l *localArtifactFiles) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrFileSystemFailure, filepath.Base(path), err)
	}
	return f, nil
}

func (l *localArtifactFiles) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrDeleteFailed, ErrFileSystemFailure, err)
	}
	return nil
}

// syncingFile flushes to stable storage before closing.
type syncingFile struct {
	*os.File
}

func (s syncingFile) Close() error {
	syncErr := s.File.Sync()
	closeErr := s.File.Close()
	if syncErr != nil {
		return fmt.Errorf("%w: sync: %w", ErrFileSystemFailure, syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close: %w", ErrFileSystemFailure, closeErr)
	}
	return nil
}
