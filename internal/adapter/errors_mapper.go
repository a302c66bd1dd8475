// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [ErrNetworkFailure]
// carrying only the status otherwise. Bodies of error pages are not
// included.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}
	return fmt.Errorf("%w: http %d %s", ErrNetworkFailure, code, http.StatusText(code))
}

func mapTransportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrNetworkFailure, op, err)
}

func responseInfo(resp *resty.Response) ResponseInfo {
	info := ResponseInfo{
		StatusCode:    resp.StatusCode(),
		ContentType:   strings.TrimSpace(resp.Header().Get("Content-Type")),
		ContentLength: -1,
	}
	if v := resp.Header().Get("Content-Length"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			info.ContentLength = n
		}
	}
	return info
}
