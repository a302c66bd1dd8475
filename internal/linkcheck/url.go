// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package linkcheck

import (
	"fmt"
	"net/url"
	"strings"
)

// URL is a link that has passed [Check]. The zero value is not a valid URL;
// the only way to obtain one is [Parse].
type URL struct {
	raw    string
	scheme string
	host   string
	path   string
	rest   string
}

// Parse validates href and returns it as a [URL]. A rejected link yields an
// error wrapping [ErrSuspiciousURL] with the rejection reason.
func Parse(href string) (URL, error) {
	if v := Check(href); v.Suspicious {
		return URL{}, fmt.Errorf("%w: %s", ErrSuspiciousURL, v.Reason)
	}

	// Check already proved the href parses.
	u, _ := url.Parse(href)

	var rest strings.Builder
	if u.RawQuery != "" || u.ForceQuery {
		rest.WriteString("?" + u.RawQuery)
	}
	if u.Fragment != "" {
		rest.WriteString("#" + u.EscapedFragment())
	}

	return URL{
		raw:    href,
		scheme: u.Scheme,
		host:   u.Host,
		path:   u.EscapedPath(),
		rest:   rest.String(),
	}, nil
}

// String returns the link exactly as it was validated.
func (u URL) String() string { return u.raw }

// Scheme is always "https" for a valid URL.
func (u URL) Scheme() string { return u.scheme }

// Host returns host[:port].
func (u URL) Host() string { return u.host }

// Path returns the escaped path, possibly empty.
func (u URL) Path() string { return u.path }

// Rest returns the query and fragment including their leading '?' and '#'.
func (u URL) Rest() string { return u.rest }

// IsZero reports whether u was never produced by [Parse].
func (u URL) IsZero() bool { return u.raw == "" }

// Sanitized returns scheme://host/path without query, fragment or
// credentials.
func (u URL) Sanitized() string {
	return join(u.scheme, u.host, u.path)
}

// SanitizeURL strips the query, fragment and userinfo from raw and returns
// scheme://host/path. It does not run the link checks; callers validate
// first. An input that does not parse, or has no scheme or host, yields
// [ErrMalformedURL].
func SanitizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrMalformedURL
	}
	return join(u.Scheme, u.Host, u.EscapedPath()), nil
}

func join(scheme, host, path string) string {
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path
}
