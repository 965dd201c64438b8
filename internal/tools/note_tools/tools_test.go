package note_tools

import (
	"context"
	"path/filepath"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/server"
	"github.com/teemow/daybook/internal/session"
)

// TestRegisterNoteTools tests the registration of note tools
func TestRegisterNoteTools(t *testing.T) {
	ctx := context.Background()
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.token"))
	client := api.NewClient(store, api.WithBaseURL("http://localhost:3000"))
	serverContext, err := server.NewServerContext(ctx, store, client)
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	defer serverContext.Shutdown()

	for _, readOnly := range []bool{false, true} {
		mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
			mcpserver.WithToolCapabilities(true),
		)

		if err := RegisterNoteTools(mcpSrv, serverContext, readOnly); err != nil {
			t.Errorf("RegisterNoteTools(readOnly=%t) error = %v", readOnly, err)
		}
	}
}
