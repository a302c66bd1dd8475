// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive preview CLI runtime.
//
// It picks the link to preview (argument or clipboard), hands it to the
// terminal UI and prints a one-line summary when the UI exits.
package client
