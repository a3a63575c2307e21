// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// Credentials is the username/password pair sent to the nim login endpoint.
// It is built by the caller right before the request and is never stored.
type Credentials struct {
	// Username is the account name checked by the server.
	Username string `json:"username"`

	// Password is sent as-is in the login request body.
	// It must never appear in logs.
	Password string `json:"password"`
}

// Payload returns the login request body as a flat string mapping.
func (c Credentials) Payload() map[string]string {
	return map[string]string{
		"username": c.Username,
		"password": c.Password,
	}
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
// Only the username is emitted; the password is replaced by a presence flag.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username).Bool("password_set", c.Password != "")
}
