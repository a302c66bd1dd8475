// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-safe-preview/internal/logger"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

// ── withTraceID ──────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		incoming  string
		wantReuse bool
	}{
		{name: "reuses well-formed id", incoming: "req_42-abc", wantReuse: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces id with spaces", incoming: "a b"},
		{name: "replaces id with newline", incoming: "abc\r\nX-Injected: 1"},
		{name: "replaces overlong id", incoming: strings.Repeat("a", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				seen = w.Header().Get(traceIDHeader)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			assert.Equal(t, got, seen)
			if tt.wantReuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, got, line["trace_id"])
		})
	}
}

func TestValidTraceID_Boundary(t *testing.T) {
	assert.True(t, validTraceID(strings.Repeat("Z", maxTraceIDLength)))
	assert.False(t, validTraceID(strings.Repeat("Z", maxTraceIDLength+1)))
	assert.False(t, validTraceID("ид"))
}

// ── withLogging ──────────────────────────────────────────────────────────────

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("12345"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/url-scrape?token=secret", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/api/url-scrape", line["path"])
	assert.Equal(t, http.MethodPost, line["method"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.EqualValues(t, 5, line["size"])
	assert.Contains(t, line, "duration")
	assert.Contains(t, line, "trace_id")
	assert.NotContains(t, buf.String(), "secret")
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"status":200`)
}

// ── responseWriter ───────────────────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, 3, n)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Equal(t, "abcde", rec.Body.String())
}

func TestResponseWriter_NothingWritten(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Zero(t, w.size)
}
