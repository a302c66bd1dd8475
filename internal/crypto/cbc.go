// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
)

// blockStream is one direction of a streaming block cipher. Update may be
// called any number of times with arbitrary slices; Final is called once.
// Neither retains p.
type blockStream interface {
	Update(p []byte) ([]byte, error)
	Final() ([]byte, error)
}

func newBlock(key []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrCipherFailure, err)
	}
	return block, nil
}

// cbcEncrypter buffers the tail of each update until a whole block is
// available and pads the last block on Final.
type cbcEncrypter struct {
	mode    cipher.BlockMode
	pending []byte
}

func newCBCEncrypter(key, iv []byte) (*cbcEncrypter, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	return &cbcEncrypter{mode: cipher.NewCBCEncrypter(block, iv)}, nil
}

func (e *cbcEncrypter) Update(p []byte) ([]byte, error) {
	e.pending = append(e.pending, p...)
	n := len(e.pending) - len(e.pending)%aes.BlockSize
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	e.mode.CryptBlocks(out, e.pending[:n])
	e.pending = append(e.pending[:0], e.pending[n:]...)
	return out, nil
}

func (e *cbcEncrypter) Final() ([]byte, error) {
	padded := pkcs7Pad(e.pending)
	out := make([]byte, len(padded))
	e.mode.CryptBlocks(out, padded)
	e.pending = nil
	return out, nil
}

// cbcDecrypter is a single CBC context for the whole stream. The last full
// block is always held back because it may carry the padding.
type cbcDecrypter struct {
	mode    cipher.BlockMode
	pending []byte
	last    []byte
}

func newCBCDecrypter(key, iv []byte) (*cbcDecrypter, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	return &cbcDecrypter{mode: cipher.NewCBCDecrypter(block, iv)}, nil
}

func (d *cbcDecrypter) Update(p []byte) ([]byte, error) {
	d.pending = append(d.pending, p...)
	n := len(d.pending) - len(d.pending)%aes.BlockSize
	if n == 0 {
		return nil, nil
	}

	plain := make([]byte, n)
	d.mode.CryptBlocks(plain, d.pending[:n])
	d.pending = append(d.pending[:0], d.pending[n:]...)

	out := append(d.last, plain[:n-aes.BlockSize]...)
	d.last = plain[n-aes.BlockSize:]
	return out, nil
}

func (d *cbcDecrypter) Final() ([]byte, error) {
	if len(d.pending) != 0 {
		return nil, fmt.Errorf("%w: %w", ErrCipherFailure, errPartialBlock)
	}
	if d.last == nil {
		return nil, fmt.Errorf("%w: %w", ErrCipherFailure, errShortHeader)
	}
	return pkcs7Unpad(d.last)
}

// reseedDecrypter approximates the historical decrypter: every chunk gets a
// fresh CBC context seeded with the header IV instead of continuing the
// previous one. Unlike the historical code it carries partial blocks over
// to the next chunk and strips the padding in Final, so it differs on
// chunks that are not block aligned. It is only correct when the whole
// ciphertext after the header arrives in a single chunk, and exists so that
// behavior can be compared against [cbcDecrypter].
type reseedDecrypter struct {
	block   cipher.Block
	iv      []byte
	pending []byte
	last    []byte
}

func newReseedDecrypter(key, iv []byte) (*reseedDecrypter, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	return &reseedDecrypter{block: block, iv: bytes.Clone(iv)}, nil
}

func (d *reseedDecrypter) Update(p []byte) ([]byte, error) {
	d.pending = append(d.pending, p...)
	n := len(d.pending) - len(d.pending)%aes.BlockSize
	if n == 0 {
		return nil, nil
	}

	plain := make([]byte, n)
	cipher.NewCBCDecrypter(d.block, d.iv).CryptBlocks(plain, d.pending[:n])
	d.pending = append(d.pending[:0], d.pending[n:]...)

	out := append(d.last, plain[:n-aes.BlockSize]...)
	d.last = plain[n-aes.BlockSize:]
	return out, nil
}

func (d *reseedDecrypter) Final() ([]byte, error) {
	if len(d.pending) != 0 {
		return nil, fmt.Errorf("%w: %w", ErrCipherFailure, errPartialBlock)
	}
	if d.last == nil {
		return nil, fmt.Errorf("%w: %w", ErrCipherFailure, errShortHeader)
	}
	return pkcs7Unpad(d.last)
}

func pkcs7Pad(p []byte) []byte {
	n := aes.BlockSize - len(p)%aes.BlockSize
	return append(bytes.Clone(p), bytes.Repeat([]byte{byte(n)}, n)...)
}

// pkcs7Unpad checks the padding of the final block without branching on the
// padding bytes.
func pkcs7Unpad(block []byte) ([]byte, error) {
	if len(block) != aes.BlockSize {
		return nil, fmt.Errorf("%w: %w", ErrCipherFailure, errBadPadding)
	}
	n := int(block[len(block)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, fmt.Errorf("%w: %w", ErrCipherFailure, errBadPadding)
	}
	want := bytes.Repeat([]byte{byte(n)}, n)
	if subtle.ConstantTimeCompare(block[len(block)-n:], want) != 1 {
		return nil, fmt.Errorf("%w: %w", ErrCipherFailure, errBadPadding)
	}
	return bytes.Clone(block[:len(block)-n]), nil
}
