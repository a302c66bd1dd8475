// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the loopback JSON boundary between the UI and the
// services: link previews, image download, encrypt/decrypt and blob serving.
//
// Best-effort calls (url-scrape, download-image) answer 200 with a JSON null
// on failure. Explicit calls (encrypt, decrypt, blobs) map errors to a status
// code and a short fixed message that never echoes the input.
package http
