package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks failures to complete an HTTP exchange (DNS, connect,
	// TLS, cancelled context, too many redirects, malformed URL).
	ErrNetwork = errors.New("network error")
	// ErrDecode marks replies whose body is not valid JSON.
	ErrDecode = errors.New("decode error")
)

const maxBodySnippet = 128

// NetworkError is returned when the transport could not complete a request.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrNetwork, e.Method, e.URL, e.Err)
}

// Unwrap exposes both [ErrNetwork] and the transport cause.
func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// DecodeError is returned when a reply arrived but its body is not JSON.
type DecodeError struct {
	Method     string
	URL        string
	StatusCode int
	// Body holds at most the first 128 bytes of the reply.
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s %s (status %d): %v", ErrDecode, e.Method, e.URL, e.StatusCode, e.Err)
}

// Unwrap exposes both [ErrDecode] and the JSON syntax error.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

func bodySnippet(body []byte) string {
	if len(body) > maxBodySnippet {
		return string(body[:maxBodySnippet])
	}
	return string(body)
}
