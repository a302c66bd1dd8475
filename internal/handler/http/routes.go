// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// jsonContentType is the only request body type accepted. A cross-site
// form post cannot send it without a preflight.
const jsonContentType = "application/json"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getVersion)

	// best effort, null on failure
	router.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType(jsonContentType))
		r.Post("/api/url-scrape", h.urlScrape)
		r.Post("/api/download-image", h.downloadImage)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType(jsonContentType))
		r.Post("/api/encrypt-image", h.encryptImage)
		r.Post("/api/decrypt-image", h.decryptImage)
		r.Get("/api/artifacts", h.listArtifacts)
		r.Delete("/api/artifacts/{ref}", h.deleteArtifact)

		r.Get("/api/blobs/{ref}", h.getBlob)
		r.Delete("/api/blobs/{ref}", h.revokeBlob)
	})

	router.Handle("/metrics", promhttp.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
