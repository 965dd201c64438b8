package api

import (
	"strings"
	"time"
)

// Time is a time.Time with the backend's wire encoding: an ISO-8601
// (RFC 3339) string. The backend stores dates with millisecond
// precision, so both "2006-01-02T15:04:05Z" and fractional-second
// variants must decode.
type Time struct {
	time.Time
}

// Now returns the current time as a wire Time.
func Now() Time {
	return Time{time.Now().UTC().Truncate(time.Second)}
}

// At wraps a time.Time as a wire Time.
func At(t time.Time) Time {
	return Time{t}
}

// MarshalJSON encodes the time as an RFC 3339 string.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON decodes an RFC 3339 string. Missing, null, empty or
// unparseable values decode to the zero time rather than failing the
// whole document; resource normalization fills zero dates with
// type-appropriate defaults.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}
