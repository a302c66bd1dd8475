// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-safe-preview/internal/app"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
)

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ref := chi.URLParam(r, "ref")

	blob, err := h.services.BlobService.GetBlob(r.Context(), ref)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getBlob").Msg("blob lookup failed")
		http.Error(w, app.MsgBlobNotAvailable, statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob.Data)
}

func (h *Handler) revokeBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ref := chi.URLParam(r, "ref")

	if err := h.services.BlobService.RevokeBlob(r.Context(), ref); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.revokeBlob").Msg("blob revoke failed")
		http.Error(w, app.MsgBlobNotAvailable, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
