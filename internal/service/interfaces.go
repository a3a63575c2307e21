// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service composes the nim call sites with their outcome sinks.
//
// Every call is a single round trip through [adapter.NimAPI]. A resolved
// value goes to the [DisplaySink], a failure to the [ErrorSink]; the caller
// gets both back as well.
package service

import (
	"context"

	"github.com/MKhiriev/nim-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Operation names passed to the sinks.
const (
	OpLogin    = "login"
	OpLogout   = "logout"
	OpIdentity = "identity"
)

// DisplaySink receives the decoded reply of a successful call.
type DisplaySink interface {
	Display(ctx context.Context, op string, value any)
}

// ErrorSink receives the error of a failed call.
type ErrorSink interface {
	Report(ctx context.Context, op string, err error)
}

// ClientAuthService runs the nim authentication calls and forwards their
// outcomes to the configured sinks.
type ClientAuthService interface {
	// Login sends creds to the server. creds are not retained.
	Login(ctx context.Context, creds models.Credentials) (any, error)

	// Logout ends the server session held by the client's cookie jar.
	Logout(ctx context.Context) (any, error)

	// Identity asks the server which user the current session belongs to.
	Identity(ctx context.Context) (any, error)
}
