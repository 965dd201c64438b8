package session

import (
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "daybook", "session.token"))
}

func TestStore_TokenEmpty(t *testing.T) {
	store := testStore(t)

	if _, ok := store.Token(); ok {
		t.Error("Expected no token in a fresh store")
	}
	if store.HasToken() {
		t.Error("Expected HasToken to be false for a fresh store")
	}
}

func TestStore_SetAndGet(t *testing.T) {
	store := testStore(t)

	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	token, ok := store.Token()
	if !ok {
		t.Fatal("Expected a token after SetToken")
	}
	if token != "abc123" {
		t.Errorf("Token = %q, want %q", token, "abc123")
	}
}

func TestStore_SetEmptyToken(t *testing.T) {
	store := testStore(t)

	if err := store.SetToken(""); err == nil {
		t.Error("Expected error for empty token")
	}
}

func TestStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.token")

	first := NewStoreAt(path)
	if err := first.SetToken("persisted"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	// A second store over the same path simulates a process restart.
	second := NewStoreAt(path)
	token, ok := second.Token()
	if !ok {
		t.Fatal("Expected token to survive restart")
	}
	if token != "persisted" {
		t.Errorf("Token = %q, want %q", token, "persisted")
	}
}

func TestStore_Clear(t *testing.T) {
	store := testStore(t)

	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if store.HasToken() {
		t.Error("Expected no token after Clear")
	}

	// Clearing an already-empty store must not fail.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on empty store failed: %v", err)
	}
}

func TestStore_TokenFilePermissions(t *testing.T) {
	store := testStore(t)

	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Token file permissions = %o, want 0600", perm)
	}
}

func TestStore_WhitespaceOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.token")
	if err := os.WriteFile(path, []byte("  \n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewStoreAt(path)
	if _, ok := store.Token(); ok {
		t.Error("Expected whitespace-only file to yield no token")
	}
}
