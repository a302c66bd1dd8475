// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrDomainNotAllowed is returned when a link passes the safety checks
	// but its host is not on the configured allow-list.
	ErrDomainNotAllowed = errors.New("domain not allowed")

	// ErrImageTooLarge is returned when the declared or actual image size
	// exceeds the configured limit.
	ErrImageTooLarge = errors.New("image too large")

	// ErrNotAnImage is returned when the server does not declare an image/*
	// content type.
	ErrNotAnImage = errors.New("not an image")

	// ErrUnsupportedSource is returned for a source the operation does not
	// take, such as a local path given to EncryptToArtifact.
	ErrUnsupportedSource = errors.New("unsupported source")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
