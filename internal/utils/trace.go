package utils

import (
	"context"

	"github.com/google/uuid"
)

// TraceIDHeader is the request header carrying the trace ID of an outbound
// call.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceID returns the trace ID stored in ctx or a fresh one.
func TraceID(ctx context.Context) string {
	if traceID, ok := GetTraceIDFromContext(ctx); ok {
		return traceID
	}

	return NewTraceID()
}
