// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the daemon: the resty
// client wrapper, JSON response writing and artifact ref generation.
package utils
