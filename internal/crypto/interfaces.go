// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-safe-preview/models"
)

// KeyDeriver turns the persistent secret key into the AES-256 key used by a
// single encrypt or decrypt call. Derivation is deliberately slow; callers
// must not cache its output.
type KeyDeriver interface {
	// Derive returns a 32-byte key. It blocks until a derivation slot is
	// free or ctx is done.
	Derive(ctx context.Context, key models.SecretKey) ([]byte, error)
}

// Pipeline streams image bytes through the cipher.
//
// Encrypt output layouts:
//
//	cbc: hex(IV) (32 ASCII bytes) ‖ AES-256-CBC/PKCS#7 ciphertext
//	gcm: "SPV1" ‖ nonce prefix (7) ‖ { uint32be(len) ‖ GCM segment }...
//
// Decrypt recognizes both layouts by their first bytes. Chunks are handled
// strictly in the order src yields them.
type Pipeline interface {
	// Encrypt reads plaintext from src until EOF and writes the encrypted
	// stream to dst. It returns the number of bytes written to dst.
	Encrypt(ctx context.Context, dst io.Writer, src io.Reader, key models.SecretKey, scheme models.CipherScheme) (int64, error)

	// Decrypt reads an encrypted stream from src and writes the plaintext to
	// dst. It returns the number of plaintext bytes written.
	Decrypt(ctx context.Context, dst io.Writer, src io.Reader, key models.SecretKey) (int64, error)
}
