package common

import (
	"testing"
	"time"
)

func TestRequireString(t *testing.T) {
	args := map[string]interface{}{"title": "Buy milk", "empty": "", "number": 42}

	if v, err := RequireString(args, "title"); err != nil || v != "Buy milk" {
		t.Errorf("RequireString(title) = %q, %v", v, err)
	}
	if _, err := RequireString(args, "empty"); err == nil {
		t.Error("expected error for empty value")
	}
	if _, err := RequireString(args, "missing"); err == nil {
		t.Error("expected error for missing key")
	}
	if _, err := RequireString(args, "number"); err == nil {
		t.Error("expected error for non-string value")
	}
}

func TestOptionalString(t *testing.T) {
	args := map[string]interface{}{"priority": "high", "empty": ""}

	if v := OptionalString(args, "priority", "medium"); v != "high" {
		t.Errorf("OptionalString(priority) = %q, want %q", v, "high")
	}
	if v := OptionalString(args, "empty", "medium"); v != "medium" {
		t.Errorf("OptionalString(empty) = %q, want fallback", v)
	}
	if v := OptionalString(args, "missing", "medium"); v != "medium" {
		t.Errorf("OptionalString(missing) = %q, want fallback", v)
	}
}

func TestOptionalBool(t *testing.T) {
	args := map[string]interface{}{"completed": true}

	if !OptionalBool(args, "completed", false) {
		t.Error("OptionalBool(completed) = false, want true")
	}
	if OptionalBool(args, "missing", false) {
		t.Error("OptionalBool(missing) = true, want fallback false")
	}
}

func TestOptionalTime(t *testing.T) {
	args := map[string]interface{}{
		"due":     "2025-09-01T10:00:00Z",
		"invalid": "tomorrow",
	}

	parsed := OptionalTime(args, "due")
	want := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("OptionalTime(due) = %v, want %v", parsed, want)
	}
	if !OptionalTime(args, "invalid").IsZero() {
		t.Error("OptionalTime(invalid) should return zero time")
	}
	if !OptionalTime(args, "missing").IsZero() {
		t.Error("OptionalTime(missing) should return zero time")
	}
}
