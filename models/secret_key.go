// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"fmt"
)

// SecretKeySize is the length of the raw key material in bytes.
const SecretKeySize = 32

// SecretKey is the persistent symmetric secret. It is never printed: both
// String and the fmt verbs render a placeholder.
type SecretKey struct {
	raw [SecretKeySize]byte
}

// NewSecretKey copies b into a SecretKey. b must be exactly
// [SecretKeySize] bytes long.
func NewSecretKey(b []byte) (SecretKey, error) {
	var k SecretKey
	if len(b) != SecretKeySize {
		return k, fmt.Errorf("secret key must be %d bytes, got %d", SecretKeySize, len(b))
	}
	copy(k.raw[:], b)
	return k, nil
}

// ParseSecretKey decodes the hex text form stored in the key file.
func ParseSecretKey(text string) (SecretKey, error) {
	b, err := hex.DecodeString(text)
	if err != nil {
		return SecretKey{}, fmt.Errorf("decode secret key: %w", err)
	}
	return NewSecretKey(b)
}

// Bytes returns a copy of the raw key material.
func (k SecretKey) Bytes() []byte {
	out := make([]byte, SecretKeySize)
	copy(out, k.raw[:])
	return out
}

// Passphrase is the hex text of the key. It is the input of the key
// derivation, which keeps artifacts compatible with key files written as
// text.
func (k SecretKey) Passphrase() []byte {
	out := make([]byte, hex.EncodedLen(SecretKeySize))
	hex.Encode(out, k.raw[:])
	return out
}

// IsZero reports whether k holds no key material.
func (k SecretKey) IsZero() bool {
	return k.raw == [SecretKeySize]byte{}
}

func (k SecretKey) String() string { return "[secret key redacted]" }

// Format keeps %x, %v and friends from leaking the key.
func (k SecretKey) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(k.String()))
}
