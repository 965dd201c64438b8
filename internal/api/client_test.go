package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/teemow/daybook/internal/session"
)

func testSessionStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStoreAt(filepath.Join(t.TempDir(), "session.token"))
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := testSessionStore(t)
	if err := store.SetToken("tok-1"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	client := NewClient(store, WithBaseURL(srv.URL))
	if err := client.Do(context.Background(), http.MethodGet, "/todos", nil, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer tok-1")
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(testSessionStore(t), WithBaseURL(srv.URL))
	if err := client.Do(context.Background(), http.MethodGet, "/todos", nil, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if hadAuth {
		t.Errorf("Expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_TokenReadPerRequest(t *testing.T) {
	// The interception stage reads the store before every request, so a
	// token set after client construction must still be attached.
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := testSessionStore(t)
	client := NewClient(store, WithBaseURL(srv.URL))

	if err := store.SetToken("late-token"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	if err := client.Do(context.Background(), http.MethodGet, "/todos", nil, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "Bearer late-token" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer late-token")
	}
}

func TestClient_ApiPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(testSessionStore(t), WithBaseURL(srv.URL))
	if err := client.Do(context.Background(), http.MethodGet, "/notes", nil, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotPath != "/api/notes" {
		t.Errorf("Request path = %q, want %q", gotPath, "/api/notes")
	}
}

func TestClient_ResourceErrorWithServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	client := NewClient(testSessionStore(t), WithBaseURL(srv.URL))
	err := client.Do(context.Background(), http.MethodGet, "/todos", nil, nil)

	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("Expected *ResourceError, got %T: %v", err, err)
	}
	if resErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", resErr.Status, http.StatusUnauthorized)
	}
	if resErr.Message != "invalid token" {
		t.Errorf("Message = %q, want %q", resErr.Message, "invalid token")
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(testSessionStore(t), WithBaseURL(srv.URL))
	err := client.Do(context.Background(), http.MethodGet, "/todos", nil, nil)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected *TransportError, got %T: %v", err, err)
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken`))
	}))
	defer srv.Close()

	client := NewClient(testSessionStore(t), WithBaseURL(srv.URL))
	var out map[string]any
	err := client.Do(context.Background(), http.MethodGet, "/todos", nil, &out)

	var malformedErr *MalformedResponseError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("Expected *MalformedResponseError, got %T: %v", err, err)
	}
}

func TestClient_RequestBodyIsJSON(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(testSessionStore(t), WithBaseURL(srv.URL))
	body := map[string]string{"title": "test"}
	if err := client.Do(context.Background(), http.MethodPost, "/todos", body, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want %q", gotContentType, "application/json")
	}
}

func TestBaseURLForTarget(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{TargetSimulator, "http://localhost:3000"},
		{TargetEmulator, "http://10.0.2.2:3000"},
		{TargetProduction, "https://api.daybook.app"},
		{"something-else", "http://localhost:3000"},
		{"", "http://localhost:3000"},
	}

	for _, tt := range tests {
		if got := BaseURLForTarget(tt.target); got != tt.want {
			t.Errorf("BaseURLForTarget(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}
