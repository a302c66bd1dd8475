// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-safe-preview/models"
)

// HeaderSize is the length of the hex IV that starts a cbc stream.
const HeaderSize = 2 * aes.BlockSize

// DefaultChunkSize is how much the pipeline asks src for per read. A chunk
// is whatever a single Read returns, so transports may deliver less.
const DefaultChunkSize = 32 << 10

// DecryptMode selects how cbc streams are decrypted.
type DecryptMode int

const (
	// SingleContext feeds the whole ciphertext through one CBC context.
	SingleContext DecryptMode = iota

	// LegacyChunkReseed seeds a fresh CBC context with the header IV for
	// every chunk. It only round-trips when the ciphertext after the header
	// arrives as one chunk.
	LegacyChunkReseed
)

// Option configures a [Pipeline].
type Option func(*pipeline)

// WithChunkSize sets the read buffer size.
func WithChunkSize(n int) Option {
	return func(p *pipeline) {
		if n > 0 {
			p.chunkSize = n
		}
	}
}

// WithDecryptMode selects the cbc decrypter.
func WithDecryptMode(m DecryptMode) Option {
	return func(p *pipeline) { p.mode = m }
}

// WithRandom replaces the source of IVs and nonce prefixes.
func WithRandom(r io.Reader) Option {
	return func(p *pipeline) { p.random = r }
}

type pipeline struct {
	kdf       KeyDeriver
	chunkSize int
	mode      DecryptMode
	random    io.Reader
}

// NewPipeline returns a [Pipeline] that derives keys with kdf.
func NewPipeline(kdf KeyDeriver, opts ...Option) Pipeline {
	p := &pipeline{
		kdf:       kdf,
		chunkSize: DefaultChunkSize,
		mode:      SingleContext,
		random:    rand.Reader,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Encrypt implements [Pipeline].
func (p *pipeline) Encrypt(ctx context.Context, dst io.Writer, src io.Reader, key models.SecretKey, scheme models.CipherScheme) (int64, error) {
	dk, err := p.kdf.Derive(ctx, key)
	if err != nil {
		return 0, err
	}

	switch scheme {
	case models.SchemeCBC, "":
		return p.encryptCBC(ctx, dst, src, dk)
	case models.SchemeGCM:
		aead, err := newGCM(dk)
		if err != nil {
			return 0, err
		}
		prefix := make([]byte, noncePrefixSize)
		if _, err := io.ReadFull(p.random, prefix); err != nil {
			return 0, fmt.Errorf("%w: generate nonce prefix: %w", ErrCipherFailure, err)
		}
		return sealStream(ctx, dst, src, aead, prefix)
	default:
		return 0, fmt.Errorf("%w: %w %q", ErrCipherFailure, errUnknownScheme, scheme)
	}
}

func (p *pipeline) encryptCBC(ctx context.Context, dst io.Writer, src io.Reader, dk []byte) (int64, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(p.random, iv); err != nil {
		return 0, fmt.Errorf("%w: generate iv: %w", ErrCipherFailure, err)
	}

	enc, err := newCBCEncrypter(dk, iv)
	if err != nil {
		return 0, err
	}

	header := make([]byte, HeaderSize)
	hex.Encode(header, iv)
	n, err := dst.Write(header)
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("write iv: %w", err)
	}

	n64, err := p.pump(ctx, dst, src, nil, enc)
	return written + n64, err
}

// Decrypt implements [Pipeline].
func (p *pipeline) Decrypt(ctx context.Context, dst io.Writer, src io.Reader, key models.SecretKey) (int64, error) {
	dk, err := p.kdf.Derive(ctx, key)
	if err != nil {
		return 0, err
	}

	// The first chunk may be shorter than the header; accumulate until the
	// layout is known.
	head, err := p.readAtLeast(ctx, src, len(sealedMagic))
	if err != nil {
		return 0, err
	}

	if bytes.HasPrefix(head, []byte(sealedMagic)) {
		aead, err := newGCM(dk)
		if err != nil {
			return 0, err
		}
		rest := io.MultiReader(bytes.NewReader(head[len(sealedMagic):]), src)
		return openStream(ctx, dst, rest, aead)
	}

	if len(head) < HeaderSize {
		more, err := p.readAtLeast(ctx, src, HeaderSize-len(head))
		if err != nil {
			return 0, err
		}
		head = append(head, more...)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := hex.Decode(iv, head[:HeaderSize]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCipherFailure, errBadHeader)
	}

	var dec blockStream
	switch p.mode {
	case LegacyChunkReseed:
		dec, err = newReseedDecrypter(dk, iv)
	default:
		dec, err = newCBCDecrypter(dk, iv)
	}
	if err != nil {
		return 0, err
	}

	// The rest of the first chunk is decrypted before anything else is read.
	return p.pump(ctx, dst, src, head[HeaderSize:], dec)
}

// pump feeds first and then every chunk of src through s, in order, and
// writes each output to dst.
func (p *pipeline) pump(ctx context.Context, dst io.Writer, src io.Reader, first []byte, s blockStream) (int64, error) {
	var written int64
	emit := func(out []byte) error {
		if len(out) == 0 {
			return nil
		}
		n, err := dst.Write(out)
		written += int64(n)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	if len(first) > 0 {
		out, err := s.Update(first)
		if err != nil {
			return written, err
		}
		if err := emit(out); err != nil {
			return written, err
		}
	}

	buf := make([]byte, p.chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			out, err := s.Update(buf[:n])
			if err != nil {
				return written, err
			}
			if err := emit(out); err != nil {
				return written, err
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return written, fmt.Errorf("read input: %w", readErr)
		}
	}

	out, err := s.Final()
	if err != nil {
		return written, err
	}
	return written, emit(out)
}

// readAtLeast reads whole chunks from src until at least want bytes are
// buffered. The surplus of the last chunk is returned too.
func (p *pipeline) readAtLeast(ctx context.Context, src io.Reader, want int) ([]byte, error) {
	head := make([]byte, 0, p.chunkSize)
	buf := make([]byte, p.chunkSize)
	for len(head) < want {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := src.Read(buf)
		head = append(head, buf[:n]...)
		if errors.Is(err, io.EOF) {
			if len(head) < want {
				return nil, fmt.Errorf("%w: %w", ErrCipherFailure, errShortHeader)
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
	}
	return head, nil
}
