// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// nim-client services and sinks.
//
// All Msg* constants are human-readable descriptions written into log entries
// next to the raw error code or error value they explain. Keeping them in one
// place ensures consistent wording throughout the client.
package app

import "github.com/MKhiriev/nim-client/models"

const (
	// MsgInvalidLoginPassword describes the LoginFailed code: the supplied
	// username/password combination was rejected.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgAPINotSpecified is used when a request hit the /api root without
	// naming an endpoint.
	MsgAPINotSpecified = "API endpoint not specified"

	// MsgAPINotDefined is used when the requested /api route does not exist
	// on the server.
	MsgAPINotDefined = "API endpoint not defined"

	// MsgUnknownServerError covers error codes the client does not know.
	MsgUnknownServerError = "server returned an unknown error"

	// MsgServerUnreachable is logged when the HTTP exchange could not be
	// completed.
	MsgServerUnreachable = "server unreachable"

	// MsgInvalidServerReply is logged when a reply body is not valid JSON.
	MsgInvalidServerReply = "server reply is not valid JSON"

	// MsgRequestFailed is the fallback for any other call failure.
	MsgRequestFailed = "request failed"
)

var errorCodeMessages = map[string]string{
	models.ErrorCodeLoginFailed:     MsgInvalidLoginPassword,
	models.ErrorCodeAPINotSpecified: MsgAPINotSpecified,
	models.ErrorCodeAPINotDefined:   MsgAPINotDefined,
}

// DescribeErrorCode returns the human-readable message for a nim error code.
func DescribeErrorCode(code string) string {
	if msg, ok := errorCodeMessages[code]; ok {
		return msg
	}
	return MsgUnknownServerError
}
