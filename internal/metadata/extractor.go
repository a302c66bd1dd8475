// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metadata reads link-preview tags (Open Graph, Twitter cards and
// plain HTML) out of a page.
package metadata

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/MKhiriev/go-safe-preview/models"
)

//go:generate mockgen -source=extractor.go -destination=../mock/extractor_mock.go -package=mock

// Extractor pulls preview metadata out of an HTML document.
type Extractor interface {
	// Extract parses html. A relative image reference is resolved against
	// baseURL; the image is not checked for safety here.
	Extract(html io.Reader, baseURL string) (models.LinkMetadata, error)
}

// Selectors in priority order; the first non-blank value wins.
var (
	titleSources = []source{
		{selector: `meta[property="og:title"]`, attr: "content"},
		{selector: `meta[name="twitter:title"]`, attr: "content"},
		{selector: "title"},
	}
	descriptionSources = []source{
		{selector: `meta[property="og:description"]`, attr: "content"},
		{selector: `meta[name="twitter:description"]`, attr: "content"},
		{selector: `meta[name="description"]`, attr: "content"},
	}
	imageSources = []source{
		{selector: `meta[property="og:image"]`, attr: "content"},
		{selector: `meta[name="twitter:image"]`, attr: "content"},
	}
)

// source is a CSS selector plus the attribute to read. An empty attr reads
// the element text.
type source struct {
	selector string
	attr     string
}

type goqueryExtractor struct{}

// NewExtractor returns the goquery-backed [Extractor].
func NewExtractor() Extractor {
	return goqueryExtractor{}
}

// Extract implements [Extractor].
func (goqueryExtractor) Extract(html io.Reader, baseURL string) (models.LinkMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return models.LinkMetadata{}, fmt.Errorf("parse html: %w", err)
	}

	md := models.LinkMetadata{
		Title:       models.StringPtr(firstOf(doc, titleSources)),
		Description: models.StringPtr(firstOf(doc, descriptionSources)),
	}

	if image := firstOf(doc, imageSources); image != "" {
		md.ImageURL = models.StringPtr(resolve(baseURL, image))
	}

	return md, nil
}

func firstOf(doc *goquery.Document, sources []source) string {
	for _, src := range sources {
		sel := doc.Find(src.selector).First()
		var v string
		if src.attr == "" {
			v = sel.Text()
		} else {
			v = sel.AttrOr(src.attr, "")
		}
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// resolve returns ref as an absolute URL. Unparseable input is returned
// unchanged and left for the link checks to reject.
func resolve(baseURL, ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return ref
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}
