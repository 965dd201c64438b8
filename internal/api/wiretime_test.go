package api

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTime_UnmarshalRFC3339(t *testing.T) {
	var parsed Time
	if err := json.Unmarshal([]byte(`"2025-08-31T09:30:00Z"`), &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := time.Date(2025, 8, 31, 9, 30, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("Parsed time = %v, want %v", parsed.Time, want)
	}
}

func TestTime_UnmarshalFractionalSeconds(t *testing.T) {
	// The backend stores dates with millisecond precision.
	var parsed Time
	if err := json.Unmarshal([]byte(`"2025-08-31T09:30:00.123Z"`), &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if parsed.IsZero() {
		t.Error("Expected non-zero time for fractional-second input")
	}
}

func TestTime_UnmarshalInvalid(t *testing.T) {
	// Invalid dates decode to the zero time; normalization fills the
	// default later.
	tests := []string{`"not-a-date"`, `""`, `null`}
	for _, input := range tests {
		var parsed Time
		if err := json.Unmarshal([]byte(input), &parsed); err != nil {
			t.Errorf("Unmarshal(%s) failed: %v", input, err)
		}
		if !parsed.IsZero() {
			t.Errorf("Unmarshal(%s) = %v, want zero time", input, parsed.Time)
		}
	}
}

func TestTime_MarshalRoundTrip(t *testing.T) {
	original := At(time.Date(2025, 8, 31, 9, 30, 0, 0, time.UTC))

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2025-08-31T09:30:00Z"` {
		t.Errorf("Marshal = %s, want RFC 3339 string", data)
	}

	var parsed Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !parsed.Equal(original.Time) {
		t.Errorf("Round trip changed time: %v != %v", parsed.Time, original.Time)
	}
}
