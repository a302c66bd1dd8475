// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-safe-preview/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		want   string
	}{
		{name: "nil is null", data: nil, status: http.StatusOK, want: "null"},
		{name: "struct", data: models.DecryptImageResponse{BlobRef: "blob:1"}, status: http.StatusOK, want: `{"blob_ref":"blob:1"}`},
		{name: "bytes are base64", data: models.DownloadImageResponse{Data: []byte("hi")}, status: http.StatusOK, want: `{"data":"aGk="}`},
		{name: "empty slice", data: []models.Artifact{}, status: http.StatusOK, want: "[]"},
		{name: "status kept", data: map[string]string{"ref": "a"}, status: http.StatusCreated, want: `{"ref":"a"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}
