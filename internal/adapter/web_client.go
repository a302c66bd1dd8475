// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/linkcheck"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/utils"
)

type webClient struct {
	client *utils.HTTPClient

	maxPageSize int64
	logger      *logger.Logger
}

// NewWebClient constructs the resty implementation of [WebClient] from the
// fetcher settings. hc may be nil; tests pass the client of a TLS test
// server.
//
// Every request carries cfg.UserAgent and is bounded by cfg.RequestTimeout.
// At most cfg.MaxRedirects redirects are followed, and only to targets that
// pass [linkcheck.Check].
func NewWebClient(cfg config.Fetcher, hc *http.Client, log *logger.Logger) WebClient {
	client := utils.NewHTTPClient(hc)
	client.
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetRedirectPolicy(checkedRedirects(cfg.MaxRedirects))

	return &webClient{
		client:      client,
		maxPageSize: cfg.MaxPageSize,
		logger:      log,
	}
}

// checkedRedirects bounds the redirect chain and runs the link checks on
// every hop.
func checkedRedirects(limit int) resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		if len(via) > limit {
			return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, limit)
		}
		if v := linkcheck.Check(req.URL.String()); v.Suspicious {
			return fmt.Errorf("redirect to %s: %w: %s", req.URL.Host, linkcheck.ErrSuspiciousURL, v.Reason)
		}
		return nil
	})
}

// Head implements [WebClient].
func (w *webClient) Head(ctx context.Context, u linkcheck.URL) (ResponseInfo, error) {
	resp, err := w.client.R().
		SetContext(ctx).
		Head(u.String())
	if err != nil {
		return ResponseInfo{}, mapTransportError("head", err)
	}

	w.logger.Debug().
		Str("host", u.Host()).
		Int("status", resp.StatusCode()).
		Msg("head")

	if err = mapHTTPError(resp); err != nil {
		return ResponseInfo{}, err
	}
	return responseInfo(resp), nil
}

// GetPage implements [WebClient].
func (w *webClient) GetPage(ctx context.Context, u linkcheck.URL) (Page, error) {
	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetDoNotParseResponse(true).
		Get(u.String())
	if err != nil {
		return Page{}, mapTransportError("get page", err)
	}

	body := resp.RawBody()
	defer body.Close()

	w.logger.Debug().
		Str("host", u.Host()).
		Int("status", resp.StatusCode()).
		Msg("get page")

	if err = mapHTTPError(resp); err != nil {
		return Page{}, err
	}

	data, err := io.ReadAll(io.LimitReader(body, w.maxPageSize))
	if err != nil {
		return Page{}, mapTransportError("read page", err)
	}

	finalURL := u.String()
	if raw := resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		finalURL = raw.Request.URL.String()
	}

	return Page{FinalURL: finalURL, Body: data}, nil
}

// Open implements [WebClient].
func (w *webClient) Open(ctx context.Context, u linkcheck.URL) (io.ReadCloser, ResponseInfo, error) {
	resp, err := w.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(u.String())
	if err != nil {
		return nil, ResponseInfo{}, mapTransportError("get", err)
	}

	w.logger.Debug().
		Str("host", u.Host()).
		Int("status", resp.StatusCode()).
		Msg("open")

	if err = mapHTTPError(resp); err != nil {
		resp.RawBody().Close()
		return nil, ResponseInfo{}, err
	}
	return resp.RawBody(), responseInfo(resp), nil
}
