// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"fmt"

	"golang.org/x/crypto/scrypt"
	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-safe-preview/models"
)

// scrypt parameters. They match the defaults existing artifacts were
// written with and cannot change without breaking them.
const (
	scryptN       = 1 << 14
	scryptR       = 8
	scryptP       = 1
	derivedKeyLen = 32
)

// kdfSalt is fixed. Every artifact written with the same secret key shares
// one derived key.
var kdfSalt = []byte("salt")

// scryptDeriver is the [KeyDeriver] backed by scrypt. A weighted semaphore
// caps how many derivations run at once, each one costs 16 MiB of memory.
type scryptDeriver struct {
	sem *semaphore.Weighted
}

// NewKeyDeriver returns a [KeyDeriver] allowing at most concurrency
// derivations in parallel. Values below one are treated as one.
func NewKeyDeriver(concurrency int64) KeyDeriver {
	if concurrency < 1 {
		concurrency = 1
	}
	return &scryptDeriver{sem: semaphore.NewWeighted(concurrency)}
}

// Derive implements [KeyDeriver]. The passphrase is the hex text of the key,
// not its raw bytes.
func (d *scryptDeriver) Derive(ctx context.Context, key models.SecretKey) ([]byte, error) {
	if key.IsZero() {
		return nil, fmt.Errorf("%w: empty secret key", ErrCipherFailure)
	}
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: wait for kdf slot: %w", ErrCipherFailure, err)
	}
	defer d.sem.Release(1)

	dk, err := scrypt.Key(key.Passphrase(), kdfSalt, scryptN, scryptR, scryptP, derivedKeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: derive key: %w", ErrCipherFailure, err)
	}
	return dk, nil
}
