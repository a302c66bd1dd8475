// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for go-safe-preview.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables, all named under SAFE_PREVIEW_
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] and [Load].
package config
