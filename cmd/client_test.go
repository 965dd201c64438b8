package cmd

import (
	"testing"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		baseURL string
		env     map[string]string
		want    string
	}{
		{
			name: "defaults to the simulator origin",
			want: "http://localhost:3000",
		},
		{
			name:   "resolves the production target",
			target: "production",
			want:   "https://api.daybook.app",
		},
		{
			name:   "resolves the emulator target",
			target: "emulator",
			want:   "http://10.0.2.2:3000",
		},
		{
			name:    "explicit base URL wins over target",
			target:  "production",
			baseURL: "http://staging.internal:3000",
			want:    "http://staging.internal:3000",
		},
		{
			name: "target from environment",
			env:  map[string]string{"DAYBOOK_TARGET": "production"},
			want: "https://api.daybook.app",
		},
		{
			name: "base URL from environment wins over target env",
			env: map[string]string{
				"DAYBOOK_TARGET":   "production",
				"DAYBOOK_BASE_URL": "http://staging.internal:3000",
			},
			want: "http://staging.internal:3000",
		},
		{
			name:   "target flag wins over target env",
			target: "emulator",
			env:    map[string]string{"DAYBOOK_TARGET": "production"},
			want:   "http://10.0.2.2:3000",
		},
		{
			name:   "unknown target falls back to local development",
			target: "staging",
			want:   "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear the ambient environment so only tt.env applies.
			t.Setenv("DAYBOOK_TARGET", "")
			t.Setenv("DAYBOOK_BASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := resolveBaseURL(tt.target, tt.baseURL)
			if got != tt.want {
				t.Errorf("resolveBaseURL(%q, %q) = %q, want %q", tt.target, tt.baseURL, got, tt.want)
			}
		})
	}
}
