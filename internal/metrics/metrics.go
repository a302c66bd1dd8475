// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus counters exported on /metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "safe_preview"

// Fetch kinds.
const (
	FetchPage  = "page"
	FetchImage = "image"
)

// Cipher operations.
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)

var LinkVerdicts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "link_verdicts_total",
		Help:      "Links checked before fetching, by rejection reason (empty reason means accepted).",
	},
	[]string{"reason"},
)

var Fetches = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetches_total",
		Help:      "Outbound fetches by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

var CipherBytes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cipher_bytes_total",
		Help:      "Bytes written by the cipher pipeline.",
	},
	[]string{"op", "scheme"},
)

var CipherFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cipher_failures_total",
		Help:      "Failed encrypt and decrypt calls.",
	},
	[]string{"op"},
)

var BlobsSwept = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blobs_swept_total",
		Help:      "Blob handles dropped by the TTL sweeper.",
	},
)

// Register adds every collector to reg. Collectors that are already
// registered are skipped, so calling it twice is harmless.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{LinkVerdicts, Fetches, CipherBytes, CipherFailures, BlobsSwept}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}

// Outcome labels a fetch result.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
