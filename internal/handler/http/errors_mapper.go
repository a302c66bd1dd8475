// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-safe-preview/internal/adapter"
	"github.com/MKhiriev/go-safe-preview/internal/crypto"
	"github.com/MKhiriev/go-safe-preview/internal/linkcheck"
	"github.com/MKhiriev/go-safe-preview/internal/service"
	"github.com/MKhiriev/go-safe-preview/internal/store"
)

// errorStatusMap is checked in order. A rejected redirect wraps both
// ErrSuspiciousURL and ErrNetworkFailure, so the link errors come first.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{linkcheck.ErrSuspiciousURL, http.StatusBadRequest},
	{linkcheck.ErrMalformedURL, http.StatusBadRequest},
	{service.ErrUnsupportedSource, http.StatusBadRequest},
	{service.ErrDomainNotAllowed, http.StatusForbidden},
	{service.ErrImageTooLarge, http.StatusRequestEntityTooLarge},
	{service.ErrNotAnImage, http.StatusUnsupportedMediaType},

	{store.ErrBlobNotFound, http.StatusNotFound},
	{store.ErrArtifactNotFound, http.StatusNotFound},

	{crypto.ErrCipherFailure, http.StatusUnprocessableEntity},

	{adapter.ErrTooManyRedirects, http.StatusBadGateway},
	{adapter.ErrNetworkFailure, http.StatusBadGateway},

	{store.ErrInvalidSecretKey, http.StatusInternalServerError},
	{store.ErrDeleteFailed, http.StatusInternalServerError},
	{store.ErrFileSystemFailure, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
