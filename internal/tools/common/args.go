package common

import (
	"fmt"
	"time"

	"github.com/teemow/daybook/internal/api"
)

// RequireString extracts a required string argument.
func RequireString(args map[string]interface{}, key string) (string, error) {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

// OptionalString extracts an optional string argument, returning the
// fallback when absent or empty.
func OptionalString(args map[string]interface{}, key, fallback string) string {
	if value, ok := args[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

// OptionalBool extracts an optional boolean argument.
func OptionalBool(args map[string]interface{}, key string, fallback bool) bool {
	if value, ok := args[key].(bool); ok {
		return value
	}
	return fallback
}

// OptionalTime parses an optional RFC 3339 date argument. Absent or
// unparseable values return the zero time, which normalization fills
// with the collection default.
func OptionalTime(args map[string]interface{}, key string) api.Time {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return api.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return api.Time{}
	}
	return api.At(parsed)
}
