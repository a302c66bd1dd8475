// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Default(t *testing.T) {
	client := NewHTTPClient(nil)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.NotNil(t, client.R())
}

func TestNewHTTPClient_ReusesGivenClient(t *testing.T) {
	hc := &http.Client{Timeout: 3 * time.Second}
	client := NewHTTPClient(hc)

	assert.Same(t, hc, client.GetClient())
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(nil)
	client2 := NewHTTPClient(nil)

	assert.NotSame(t, client1.Client, client2.Client)
}
