// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the nim web
// API.
//
// [JSONClient] is the generic JSON-over-HTTP helper: one request per call,
// the reply body decoded into an opaque Go value. [NimAPI] binds it to the
// three authentication endpoints. [NewHTTPJSONClient] is the resty-backed
// implementation.
//
// Failures are reported as [*NetworkError] when the exchange could not be
// completed and [*DecodeError] when the reply is not JSON. Both match
// [ErrNetwork] / [ErrDecode] with [errors.Is]. HTTP status codes are not
// errors: a 401 with a JSON body resolves like a 200.
package adapter

import (
	"context"

	"github.com/MKhiriev/nim-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// JSONClient sends JSON requests and decodes JSON replies.
//
// Decoded values use the encoding/json defaults for any: map[string]any,
// []any, float64, string, bool and nil.
type JSONClient interface {
	// PostJSON POSTs the JSON encoding of body to url and returns the decoded
	// reply. url may be relative to the configured base URL.
	PostJSON(ctx context.Context, url string, body map[string]string) (any, error)

	// GetJSON GETs url without a body and returns the decoded reply.
	GetJSON(ctx context.Context, url string) (any, error)
}

// NimAPI is the set of nim authentication calls. A single instance shares
// one cookie session, so Identity after a successful Login reports the
// logged-in user.
type NimAPI interface {
	// Login sends creds to POST /api/login.
	Login(ctx context.Context, creds models.Credentials) (any, error)

	// Logout calls GET /api/logout.
	Logout(ctx context.Context) (any, error)

	// Identity calls GET /api/identity.
	Identity(ctx context.Context) (any, error)
}
