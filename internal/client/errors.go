// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNoURL is returned when neither the arguments nor the clipboard hold a
// link.
var ErrNoURL = errors.New("no url given and clipboard is empty")
