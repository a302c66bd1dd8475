// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrFileSystemFailure wraps every unexpected error from the file
	// system: permissions, full disks, missing directories.
	ErrFileSystemFailure = errors.New("file system failure")

	// ErrDeleteFailed is returned when a decrypted file cannot be removed.
	// It always wraps [ErrFileSystemFailure] too.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrInvalidSecretKey is returned when the key file exists but does not
	// hold 64 hex characters.
	ErrInvalidSecretKey = errors.New("invalid secret key file")

	// ErrBlobNotFound is returned for unknown, revoked or expired blob refs.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrArtifactNotFound is returned when no artifact is registered under
	// the requested ref.
	ErrArtifactNotFound = errors.New("artifact not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement or query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan artifact row")
)
