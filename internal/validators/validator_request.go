// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-safe-preview/models"
)

const (
	FieldURL    = "url"
	FieldSource = "source"
	FieldRef    = "ref"
)

// MaxRefLength bounds artifact refs; real refs are UUIDs.
const MaxRefLength = 128

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.URLRequest:
		return v.validateURLRequest(ctx, value, fields...)
	case *models.URLRequest:
		return v.validateURLRequest(ctx, *value, fields...)

	case models.EncryptImageRequest:
		return v.validateEncryptRequest(ctx, value, fields...)
	case *models.EncryptImageRequest:
		return v.validateEncryptRequest(ctx, *value, fields...)

	case models.DecryptImageRequest:
		return v.validateDecryptRequest(ctx, value, fields...)
	case *models.DecryptImageRequest:
		return v.validateDecryptRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateURLRequest(_ context.Context, request models.URLRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if strings.TrimSpace(request.URL) == "" {
				return ErrEmptyURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEncryptRequest(_ context.Context, request models.EncryptImageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSource}
	}

	for _, f := range fields {
		switch f {
		case FieldSource:
			switch {
			case strings.TrimSpace(request.Source()) == "":
				return ErrNoImageSource
			case request.Ref != "":
				if !strings.HasPrefix(request.Ref, models.BlobRefPrefix) {
					return ErrNotBlobRef
				}
			case !hasHTTPSScheme(request.URL):
				return ErrNotHTTPSLink
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDecryptRequest(_ context.Context, request models.DecryptImageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRef}
	}

	for _, f := range fields {
		switch f {
		case FieldRef:
			if strings.TrimSpace(request.Ref) == "" {
				return ErrEmptyRef
			}
			if len(request.Ref) > MaxRefLength {
				return ErrRefTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func hasHTTPSScheme(link string) bool {
	const scheme = "https://"
	return len(link) >= len(scheme) && strings.EqualFold(link[:len(scheme)], scheme)
}
