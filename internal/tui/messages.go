// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-safe-preview/models"

type previewLoadedMsg struct {
	metadata *models.LinkMetadata
	err      error
}

type artifactSavedMsg struct {
	artifact models.Artifact
	err      error
}

type copiedMsg struct {
	err error
}
