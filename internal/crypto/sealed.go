// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bufio"
	"context"
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	sealedMagic = "SPV1"

	// sealedSegmentSize is the largest plaintext sealed under one nonce.
	sealedSegmentSize = 64 << 10

	noncePrefixSize = 7
	nonceSize       = noncePrefixSize + 4 + 1
	lastSegmentFlag = 1
)

// segmentNonce builds prefix ‖ uint32be(counter) ‖ last. The last flag stops
// an attacker from cutting the stream at a segment boundary.
func segmentNonce(prefix []byte, counter uint32, last bool) []byte {
	nonce := make([]byte, nonceSize)
	copy(nonce, prefix)
	binary.BigEndian.PutUint32(nonce[noncePrefixSize:], counter)
	if last {
		nonce[nonceSize-1] = lastSegmentFlag
	}
	return nonce
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrCipherFailure, err)
	}
	return aead, nil
}

// sealStream writes the sealed layout of src to dst. The magic and nonce
// prefix must already have been generated by the caller.
func sealStream(ctx context.Context, dst io.Writer, src io.Reader, aead cipher.AEAD, prefix []byte) (int64, error) {
	var written int64
	write := func(p []byte) error {
		n, err := dst.Write(p)
		written += int64(n)
		return err
	}

	if err := write(append([]byte(sealedMagic), prefix...)); err != nil {
		return written, fmt.Errorf("write sealed header: %w", err)
	}

	r := bufio.NewReaderSize(src, sealedSegmentSize)
	buf := make([]byte, sealedSegmentSize)
	lenPrefix := make([]byte, 4)

	for counter := uint32(0); ; counter++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, err := io.ReadFull(r, buf)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return written, fmt.Errorf("read plaintext: %w", err)
		}

		last := err != nil
		if !last {
			if _, peekErr := r.Peek(1); errors.Is(peekErr, io.EOF) {
				last = true
			} else if peekErr != nil {
				return written, fmt.Errorf("read plaintext: %w", peekErr)
			}
		}

		segment := aead.Seal(nil, segmentNonce(prefix, counter, last), buf[:n], nil)
		binary.BigEndian.PutUint32(lenPrefix, uint32(len(segment)))
		if err := write(lenPrefix); err != nil {
			return written, fmt.Errorf("write segment: %w", err)
		}
		if err := write(segment); err != nil {
			return written, fmt.Errorf("write segment: %w", err)
		}

		if last {
			return written, nil
		}
		if counter == ^uint32(0) {
			return written, fmt.Errorf("%w: stream too long", ErrCipherFailure)
		}
	}
}

// openStream reads the sealed layout after the magic and writes the
// plaintext to dst. Nothing is written for a segment that fails
// authentication.
func openStream(ctx context.Context, dst io.Writer, src io.Reader, aead cipher.AEAD) (int64, error) {
	prefix := make([]byte, noncePrefixSize)
	if _, err := io.ReadFull(src, prefix); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCipherFailure, errShortHeader)
	}

	var written int64
	lenPrefix := make([]byte, 4)
	maxSegment := sealedSegmentSize + aead.Overhead()

	for counter := uint32(0); ; counter++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		if _, err := io.ReadFull(src, lenPrefix); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return written, fmt.Errorf("%w: %w", ErrCipherFailure, errTruncated)
			}
			return written, fmt.Errorf("read segment: %w", err)
		}

		size := binary.BigEndian.Uint32(lenPrefix)
		switch {
		case int64(size) > int64(maxSegment):
			return written, fmt.Errorf("%w: %w", ErrCipherFailure, errSegmentTooLong)
		case int64(size) < int64(aead.Overhead()):
			return written, fmt.Errorf("%w: %w", ErrCipherFailure, errSegmentTooShort)
		}

		segment := make([]byte, size)
		if _, err := io.ReadFull(src, segment); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return written, fmt.Errorf("%w: %w", ErrCipherFailure, errTruncated)
			}
			return written, fmt.Errorf("read segment: %w", err)
		}

		last := false
		plain, err := aead.Open(nil, segmentNonce(prefix, counter, false), segment, nil)
		if err != nil {
			plain, err = aead.Open(nil, segmentNonce(prefix, counter, true), segment, nil)
			if err != nil {
				return written, fmt.Errorf("%w: %w", ErrCipherFailure, errAuth)
			}
			last = true
		}

		n, err := dst.Write(plain)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write plaintext: %w", err)
		}

		if last {
			var one [1]byte
			if n, _ := io.ReadFull(src, one[:]); n != 0 {
				return written, fmt.Errorf("%w: %w", ErrCipherFailure, errTrailingData)
			}
			return written, nil
		}
	}
}
