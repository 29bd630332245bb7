package logger

import (
	"testing"

	"github.com/google/uuid"
)

func TestGet_BeforeInitReturnsNop(t *testing.T) {
	if Get() == nil {
		t.Fatal("Get() returned nil before Init")
	}
}

func TestNewRequestID_IsUUID(t *testing.T) {
	id := NewRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewRequestID() = %q, not a UUID: %v", id, err)
	}
	if id == NewRequestID() {
		t.Error("NewRequestID() returned the same id twice")
	}
}

func TestWithRequestID_NotNil(t *testing.T) {
	if WithRequestID("abc") == nil {
		t.Error("WithRequestID returned nil")
	}
}
