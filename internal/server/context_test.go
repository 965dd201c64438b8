package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/session"
)

func newTestServerContext(t *testing.T) *ServerContext {
	t.Helper()
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.token"))
	client := api.NewClient(store, api.WithBaseURL("http://localhost:3000"))

	sc, err := NewServerContext(context.Background(), store, client)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	return sc
}

func TestNewServerContext(t *testing.T) {
	sc := newTestServerContext(t)

	if sc.SessionStore() == nil {
		t.Error("expected session store to be set")
	}
	if sc.Client() == nil {
		t.Error("expected client to be set")
	}
	if sc.Gateway() == nil {
		t.Error("expected auth gateway to be set")
	}
	if sc.Todos() == nil || sc.Notes() == nil || sc.Events() == nil || sc.Reminders() == nil {
		t.Error("expected one controller per collection")
	}
	if sc.Metrics() != nil {
		t.Error("expected no metrics recorder before SetMetrics")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := newTestServerContext(t)

	if sc.IsShutdown() {
		t.Error("expected fresh context to not be shutdown")
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("expected context to report shutdown")
	}
	select {
	case <-sc.Context().Done():
	default:
		t.Error("expected context to be cancelled after shutdown")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}
