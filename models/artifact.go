// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CipherScheme names the on-disk format of an encrypted artifact.
type CipherScheme string

const (
	// SchemeCBC is hex(IV) followed by AES-256-CBC ciphertext, no MAC.
	SchemeCBC CipherScheme = "cbc"

	// SchemeGCM is the segmented AES-256-GCM format.
	SchemeGCM CipherScheme = "gcm"
)

// Valid reports whether s is a known scheme.
func (s CipherScheme) Valid() bool {
	return s == SchemeCBC || s == SchemeGCM
}

// Artifact is an encrypted image stored on local disk and addressed by an
// opaque ref.
type Artifact struct {
	Ref       string       `json:"ref"`
	Path      string       `json:"path"`
	Scheme    CipherScheme `json:"scheme"`
	Size      int64        `json:"size"`
	CreatedAt time.Time    `json:"created_at"`
}
