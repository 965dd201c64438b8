package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/session"
)

// resolveBaseURL picks the backend origin. An explicit base URL wins
// over a deployment target; flags win over the DAYBOOK_BASE_URL and
// DAYBOOK_TARGET environment variables.
func resolveBaseURL(target, baseURL string) string {
	if baseURL == "" {
		baseURL = os.Getenv("DAYBOOK_BASE_URL")
	}
	if baseURL != "" {
		return baseURL
	}
	if target == "" {
		target = os.Getenv("DAYBOOK_TARGET")
	}
	if target == "" {
		target = api.DefaultTarget
	}
	return api.BaseURLForTarget(target)
}

// newBackend builds the session store and the configured API client
// every command shares. Additional options (e.g. a metrics recorder for
// serve mode) are applied on top of the resolved base URL.
func newBackend(opts ...api.Option) (*session.Store, *api.Client, error) {
	store, err := session.NewStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}

	options := append([]api.Option{
		api.WithBaseURL(resolveBaseURL(flagTarget, flagBaseURL)),
	}, opts...)

	return store, api.NewClient(store, options...), nil
}

// parseTimeFlag parses an RFC 3339 date flag into a wire time.
func parseTimeFlag(name, value string) (api.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return api.Time{}, fmt.Errorf("invalid --%s %q (expected RFC 3339, e.g. 2026-08-31T09:00:00Z)", name, value)
	}
	return api.At(parsed), nil
}

// parseOptionalTimeFlag parses a date flag only when it was set on the
// command line; otherwise it returns the zero time.
func parseOptionalTimeFlag(cmd *cobra.Command, name, value string) (api.Time, error) {
	if !cmd.Flags().Changed(name) {
		return api.Time{}, nil
	}
	return parseTimeFlag(name, value)
}
