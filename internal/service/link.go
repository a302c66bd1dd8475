// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-safe-preview/internal/linkcheck"
	"github.com/MKhiriev/go-safe-preview/internal/metrics"
)

const acceptedLabel = "accepted"

// checkLink runs the link checks and counts the verdict.
func checkLink(rawURL string) (linkcheck.URL, error) {
	v := linkcheck.Check(rawURL)

	label := string(v.Reason)
	if !v.Suspicious {
		label = acceptedLabel
	}
	metrics.LinkVerdicts.WithLabelValues(label).Inc()

	if v.Suspicious {
		return linkcheck.URL{}, fmt.Errorf("%w: %s", linkcheck.ErrSuspiciousURL, v.Reason)
	}
	return linkcheck.Parse(rawURL)
}
