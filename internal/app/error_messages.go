// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// preview daemon's HTTP handlers.
//
// All Msg* constants are fixed response bodies. They never include the
// caller's input, so a failing request cannot reflect a link or a ref back.
package app

const (
	// MsgEncryptFailed is returned when an image could not be fetched or
	// encrypted into an artifact.
	MsgEncryptFailed = "error encrypting image"

	// MsgDecryptFailed is returned when an artifact could not be decrypted
	// into a blob.
	MsgDecryptFailed = "error decrypting image"

	// MsgListArtifactsFailed is returned when the artifact registry could
	// not be read.
	MsgListArtifactsFailed = "error listing artifacts"

	// MsgDeleteArtifactFailed is returned when an artifact or its file could
	// not be removed.
	MsgDeleteArtifactFailed = "error deleting artifact"

	// MsgBlobNotAvailable is returned for unknown, expired or revoked blob
	// refs alike.
	MsgBlobNotAvailable = "blob not available"
)
