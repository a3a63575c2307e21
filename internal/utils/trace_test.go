package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestNewTraceID_IsUUIDv7(t *testing.T) {
	id, err := uuid.Parse(NewTraceID())
	if err != nil {
		t.Fatalf("expected a valid UUID, got error: %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected UUID version 7, got %d", id.Version())
	}
}

func TestNewTraceID_Unique(t *testing.T) {
	if NewTraceID() == NewTraceID() {
		t.Fatal("expected two calls to return different trace IDs")
	}
}

func TestTraceID_PrefersContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "pinned")
	if got := TraceID(ctx); got != "pinned" {
		t.Errorf("expected 'pinned', got '%s'", got)
	}
}

func TestTraceID_GeneratesWhenMissing(t *testing.T) {
	if _, err := uuid.Parse(TraceID(context.Background())); err != nil {
		t.Errorf("expected generated UUID, got error: %v", err)
	}
}
