// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-safe-preview/internal/app"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/utils"
	"github.com/MKhiriev/go-safe-preview/models"
)

const defaultArtifactLimit = 50

func (h *Handler) encryptImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EncryptImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.encryptImage").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	artifact, err := h.services.VaultService.EncryptToArtifact(r.Context(), req.Source())
	if err != nil {
		log.Err(err).Str("func", "*Handler.encryptImage").Msg("error encrypting image")
		http.Error(w, app.MsgEncryptFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EncryptImageResponse{Ref: artifact.Ref, Path: artifact.Path}, http.StatusCreated)
}

func (h *Handler) decryptImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DecryptImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.decryptImage").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	blobRef, err := h.services.VaultService.DecryptArtifactToBlob(r.Context(), req.Ref)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decryptImage").Str("ref", req.Ref).Msg("error decrypting image")
		http.Error(w, app.MsgDecryptFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DecryptImageResponse{BlobRef: blobRef}, http.StatusOK)
}

func (h *Handler) listArtifacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := uint64(defaultArtifactLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 {
			http.Error(w, ErrInvalidLimit.Error(), http.StatusBadRequest)
			return
		}
		limit = n
	}

	artifacts, err := h.services.VaultService.ListArtifacts(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listArtifacts").Msg("error listing artifacts")
		http.Error(w, app.MsgListArtifactsFailed, statusFromError(err))
		return
	}
	if artifacts == nil {
		artifacts = []models.Artifact{}
	}

	utils.WriteJSON(w, artifacts, http.StatusOK)
}

func (h *Handler) deleteArtifact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ref := chi.URLParam(r, "ref")

	if err := h.services.VaultService.DeleteArtifact(r.Context(), ref); err != nil {
		log.Err(err).Str("func", "*Handler.deleteArtifact").Str("ref", ref).Msg("error deleting artifact")
		http.Error(w, app.MsgDeleteArtifactFailed, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
