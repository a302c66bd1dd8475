// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LinkMetadata is the preview of a pasted link. Every field is optional: a
// page may carry only a title, and the image handles are filled in later by
// the preview flow.
//
// LinkMetadata is passed by value and never mutated after it is returned.
type LinkMetadata struct {
	// Title comes from og:title, twitter:title or <title>, in that order.
	Title *string `json:"title,omitempty"`

	// Description comes from og:description, twitter:description or
	// <meta name="description">.
	Description *string `json:"description,omitempty"`

	// ImageURL is an absolute https URL that has passed the link checks.
	ImageURL *string `json:"image_url,omitempty"`

	// PreviewBlobRef is a blob handle holding the downloaded preview image.
	PreviewBlobRef *string `json:"preview_blob_ref,omitempty"`

	// EncryptedImageRef is an artifact ref of the encrypted image.
	EncryptedImageRef *string `json:"encrypted_image_ref,omitempty"`
}

// HasImage reports whether the page advertised a usable image.
func (m LinkMetadata) HasImage() bool {
	return m.ImageURL != nil && *m.ImageURL != ""
}

// WithPreviewBlob returns a copy of m with PreviewBlobRef set.
func (m LinkMetadata) WithPreviewBlob(ref string) LinkMetadata {
	m.PreviewBlobRef = &ref
	return m
}

// WithEncryptedImage returns a copy of m with EncryptedImageRef set.
func (m LinkMetadata) WithEncryptedImage(ref string) LinkMetadata {
	m.EncryptedImageRef = &ref
	return m
}

// StringPtr returns nil for an empty (after trimming by the caller) string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
