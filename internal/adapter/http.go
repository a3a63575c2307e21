// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/nim-client/internal/config"
	"github.com/MKhiriev/nim-client/internal/logger"
	"github.com/MKhiriev/nim-client/internal/utils"
)

// utf8BOM is skipped at the start of a reply body before decoding.
var utf8BOM = []byte("\xEF\xBB\xBF")

type httpJSONClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPJSONClient constructs the resty implementation of [JSONClient].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout
// (zero means no timeout).
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPJSONClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (JSONClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client, err := utils.NewHTTPClient(logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpJSONClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PostJSON implements [JSONClient]. The body is encoded up front so the
// request carries exactly its JSON encoding with Content-Type
// application/json.
func (h *httpJSONClient) PostJSON(ctx context.Context, endpoint string, body map[string]string) (any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	return h.execute(ctx, req, resty.MethodPost, endpoint)
}

// GetJSON implements [JSONClient].
func (h *httpJSONClient) GetJSON(ctx context.Context, endpoint string) (any, error) {
	return h.execute(ctx, h.newRequest(ctx), resty.MethodGet, endpoint)
}

// newRequest returns a request that bypasses HTTP caches. No Referer is ever
// set; redirects are stripped of it by the client's redirect policy.
func (h *httpJSONClient) newRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-cache").
		SetHeader("Pragma", "no-cache")
}

func (h *httpJSONClient) execute(ctx context.Context, req *resty.Request, method, endpoint string) (any, error) {
	traceID := utils.TraceID(ctx)
	req.SetHeader(utils.TraceIDHeader, traceID)

	log := h.logger.With().
		Str("trace_id", traceID).
		Str("method", method).
		Str("url", endpoint).
		Logger()

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		log.Debug().Err(err).Msg("request failed")
		return nil, &NetworkError{Method: method, URL: endpoint, Err: err}
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("response received")

	var value any
	if err = json.Unmarshal(bytes.TrimPrefix(resp.Body(), utf8BOM), &value); err != nil {
		return nil, &DecodeError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode(),
			Body:       bodySnippet(resp.Body()),
			Err:        err,
		}
	}

	return value, nil
}
