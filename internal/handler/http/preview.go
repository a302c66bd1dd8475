// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/utils"
	"github.com/MKhiriev/go-safe-preview/models"
)

func (h *Handler) urlScrape(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.URLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.urlScrape").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	md, err := h.services.MetadataService.ScrapeWithPreview(r.Context(), req.URL)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.urlScrape").
			Str("host", logger.URLHost(req.URL)).Msg("no preview")
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	utils.WriteJSON(w, md, http.StatusOK)
}

func (h *Handler) downloadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.URLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.downloadImage").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	data, err := h.services.ImageService.DownloadImage(r.Context(), req.URL)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.downloadImage").
			Str("host", logger.URLHost(req.URL)).Msg("no image")
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.DownloadImageResponse{Data: data}, http.StatusOK)
}
