// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestExtract_Priority(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantTitle string
		wantDesc  string
		wantImage string
	}{
		{
			name: "open graph wins",
			html: `<html><head>
				<title>Plain title</title>
				<meta name="description" content="plain description">
				<meta name="twitter:title" content="Twitter title">
				<meta name="twitter:description" content="twitter description">
				<meta name="twitter:image" content="https://img.example.com/t.png">
				<meta property="og:title" content="OG title">
				<meta property="og:description" content="og description">
				<meta property="og:image" content="https://img.example.com/og.png">
			</head></html>`,
			wantTitle: "OG title",
			wantDesc:  "og description",
			wantImage: "https://img.example.com/og.png",
		},
		{
			name: "twitter card fallback",
			html: `<html><head>
				<title>Plain title</title>
				<meta name="twitter:title" content="Twitter title">
				<meta name="twitter:description" content="twitter description">
				<meta name="twitter:image" content="https://img.example.com/t.png">
			</head></html>`,
			wantTitle: "Twitter title",
			wantDesc:  "twitter description",
			wantImage: "https://img.example.com/t.png",
		},
		{
			name: "plain html fallback",
			html: `<html><head>
				<title> Plain title </title>
				<meta name="description" content="plain description">
			</head></html>`,
			wantTitle: "Plain title",
			wantDesc:  "plain description",
			wantImage: "<nil>",
		},
		{
			name: "blank og values fall through",
			html: `<html><head>
				<meta property="og:title" content="  ">
				<title>Plain title</title>
			</head></html>`,
			wantTitle: "Plain title",
			wantDesc:  "<nil>",
			wantImage: "<nil>",
		},
		{
			name:      "nothing at all",
			html:      `<html><body><p>hello</p></body></html>`,
			wantTitle: "<nil>",
			wantDesc:  "<nil>",
			wantImage: "<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := NewExtractor().Extract(strings.NewReader(tt.html), "https://example.com/article")
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, deref(md.Title))
			assert.Equal(t, tt.wantDesc, deref(md.Description))
			assert.Equal(t, tt.wantImage, deref(md.ImageURL))
			assert.Nil(t, md.PreviewBlobRef)
			assert.Nil(t, md.EncryptedImageRef)
		})
	}
}

func TestExtract_ResolvesRelativeImage(t *testing.T) {
	tests := []struct {
		base  string
		image string
		want  string
	}{
		{base: "https://example.com/a/b", image: "/img/x.png", want: "https://example.com/img/x.png"},
		{base: "https://example.com/a/b", image: "x.png", want: "https://example.com/a/x.png"},
		{base: "https://example.com:8443/a", image: "/x.png", want: "https://example.com:8443/x.png"},
		{base: "https://example.com/", image: "//cdn.example.net/x.png", want: "https://cdn.example.net/x.png"},
		{base: "https://example.com/", image: "http://cdn.example.net/x.png", want: "http://cdn.example.net/x.png"},
	}

	for _, tt := range tests {
		html := `<meta property="og:image" content="` + tt.image + `">`
		md, err := NewExtractor().Extract(strings.NewReader(html), tt.base)
		require.NoError(t, err)
		assert.Equal(t, tt.want, deref(md.ImageURL), tt.image)
	}
}
