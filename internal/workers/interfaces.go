// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the daemon's background jobs. Today that is the
// preview blob sweeper.
package workers

import "context"

// Worker is a background job. Run must not block: implementations start
// their own goroutine and stop when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
