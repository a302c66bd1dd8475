// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BlobRefPrefix marks in-process blob handles.
const BlobRefPrefix = "blob:"

// Blob is an in-memory binary object handed to the UI by reference.
type Blob struct {
	Ref         string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}
