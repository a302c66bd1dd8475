// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package linkcheck decides whether a user-supplied link is safe to fetch.
//
// The checks are pure: no DNS lookups, no network or file I/O. They run in a
// fixed order so that cheap checks short-circuit expensive ones:
//
//	length -> parse -> scheme -> credentials -> host length -> encoded host
//	-> labels -> mixed script -> path characters
//
// Malformed input is never an error here, it is a suspicious verdict.
package linkcheck

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxHrefLength is the hard cap on the raw link length in characters.
	MaxHrefLength = 1 << 12

	// MaxHostnameLength is the hard cap on the hostname length in bytes.
	MaxHostnameLength = 2048

	requiredScheme = "https"

	// pathSearchOffset is where the search for the first path slash starts:
	// len("https:") + 4, i.e. just past "//" and the shortest usable host.
	pathSearchOffset = len(requiredScheme+":") + 4
)

// Reason names the check that rejected a link.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonTooLong     Reason = "href too long"
	ReasonMalformed   Reason = "malformed url"
	ReasonScheme      Reason = "scheme is not https"
	ReasonCredentials Reason = "url carries credentials"
	ReasonHostLength  Reason = "hostname empty or too long"
	ReasonEncodedHost Reason = "hostname is percent-encoded"
	ReasonLabels      Reason = "hostname needs at least two non-empty labels"
	ReasonMixedScript Reason = "hostname mixes ascii and non-ascii characters"
	ReasonPathChars   Reason = "path contains characters outside rfc 3986"
)

// Verdict is the outcome of [Check].
type Verdict struct {
	Suspicious bool
	Reason     Reason
}

func pass() Verdict { return Verdict{} }

func reject(r Reason) Verdict { return Verdict{Suspicious: true, Reason: r} }

// IsLinkSuspicious reports whether href must not be fetched.
func IsLinkSuspicious(href string) bool {
	return Check(href).Suspicious
}

// Check runs every link check in order and returns the first failure.
func Check(href string) Verdict {
	if len(href) > MaxHrefLength && utf8.RuneCountInString(href) > MaxHrefLength {
		return reject(ReasonTooLong)
	}

	u, ok := strictParse(href)
	if !ok {
		return reject(ReasonMalformed)
	}

	if u.Scheme != requiredScheme {
		return reject(ReasonScheme)
	}

	if u.User != nil && u.User.String() != "" {
		return reject(ReasonCredentials)
	}

	hostname := u.Hostname()
	if hostname == "" || len(hostname) > MaxHostnameLength {
		return reject(ReasonHostLength)
	}

	if strings.Contains(hostname, "%") || strings.Contains(rawHost(href), "%") {
		return reject(ReasonEncodedHost)
	}

	labels := strings.Split(hostname, ".")
	if len(labels) < 2 {
		return reject(ReasonLabels)
	}
	for _, label := range labels {
		if label == "" {
			return reject(ReasonLabels)
		}
	}

	if isMixedScript(hostname) {
		return reject(ReasonMixedScript)
	}

	for _, r := range pathAndHash(href) {
		if !isValidURIRune(r) {
			return reject(ReasonPathChars)
		}
	}

	return pass()
}

// strictParse parses href and rejects the forms that url.Parse tolerates but
// a browser URL parser would not produce a usable host for.
func strictParse(href string) (*url.URL, bool) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	if u.Scheme == "" || u.Opaque != "" {
		return nil, false
	}
	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n > 65535 {
			return nil, false
		}
	}
	return u, true
}

// rawHost returns the host[:port] part of href exactly as typed, before any
// percent-decoding done by url.Parse.
func rawHost(href string) string {
	_, rest, found := strings.Cut(href, "://")
	if !found {
		return ""
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		rest = rest[i+1:]
	}
	return rest
}

// isMixedScript converts a punycode hostname to Unicode, normalizes it and
// reports whether it mixes ASCII with non-ASCII code points.
func isMixedScript(hostname string) bool {
	unicodeHost, err := idna.ToUnicode(hostname)
	if err != nil {
		unicodeHost = hostname
	}
	withoutPeriods := strings.ReplaceAll(norm.NFC.String(unicodeHost), ".", "")

	var hasASCII, hasOther bool
	for _, r := range withoutPeriods {
		if r >= 0x20 && r <= 0x7f {
			hasASCII = true
		} else {
			hasOther = true
		}
		if hasASCII && hasOther {
			return true
		}
	}
	return false
}

// pathAndHash returns everything from the first slash after the authority,
// taken from the raw href so that nothing is normalized away.
func pathAndHash(href string) string {
	if len(href) <= pathSearchOffset {
		return ""
	}
	i := strings.IndexByte(href[pathSearchOffset:], '/')
	if i < 0 {
		return ""
	}
	return href[pathSearchOffset+i:]
}

// isValidURIRune reports whether r is in the RFC 3986 allowed set:
// unreserved, gen-delims, sub-delims and '%'.
func isValidURIRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-._~"+":/?#[]@"+"!$&'()*+,;="+"%", r)
}
