// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// URLRequest is the body of /api/url-scrape and /api/download-image.
type URLRequest struct {
	URL string `json:"url"`
}

// DownloadImageResponse carries the image bytes, base64 encoded in JSON.
type DownloadImageResponse struct {
	Data []byte `json:"data"`
}

// EncryptImageRequest names the image to encrypt: a blob ref or an https
// link. Ref wins when both are set.
type EncryptImageRequest struct {
	Ref string `json:"ref,omitempty"`
	URL string `json:"url,omitempty"`
}

// Source returns the ref or, failing that, the link.
func (r EncryptImageRequest) Source() string {
	if r.Ref != "" {
		return r.Ref
	}
	return r.URL
}

type EncryptImageResponse struct {
	Ref  string `json:"ref"`
	Path string `json:"path"`
}

type DecryptImageRequest struct {
	Ref string `json:"ref"`
}

type DecryptImageResponse struct {
	BlobRef string `json:"blob_ref"`
}
