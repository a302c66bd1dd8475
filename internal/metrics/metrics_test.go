// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(Fetches.WithLabelValues(FetchImage, "ok"))
	Fetches.WithLabelValues(FetchImage, Outcome(nil)).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Fetches.WithLabelValues(FetchImage, "ok")))

	assert.Equal(t, "error", Outcome(errors.New("boom")))
}
