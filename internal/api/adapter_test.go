package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testItem mirrors the backend's task document shape.
type testItem struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     Time   `json:"dueDate"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// fakeBackend is a minimal in-memory CRUD server for one collection.
type fakeBackend struct {
	nextID int
	order  []string
	items  map[string]testItem
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{items: map[string]testItem{}}
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		id := strings.TrimPrefix(r.URL.Path, "/api/todos")
		id = strings.TrimPrefix(id, "/")

		switch {
		case r.Method == http.MethodGet && id == "":
			list := make([]testItem, 0, len(b.order))
			for _, key := range b.order {
				list = append(list, b.items[key])
			}
			_ = json.NewEncoder(w).Encode(list)

		case r.Method == http.MethodPost && id == "":
			var item testItem
			_ = json.NewDecoder(r.Body).Decode(&item)
			b.nextID++
			item.ID = fmt.Sprintf("t%d", b.nextID)
			b.items[item.ID] = item
			b.order = append(b.order, item.ID)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(item)

		case r.Method == http.MethodPut && id != "":
			if _, ok := b.items[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"message":"todo not found"}`))
				return
			}
			var item testItem
			_ = json.NewDecoder(r.Body).Decode(&item)
			item.ID = id
			b.items[id] = item
			_ = json.NewEncoder(w).Encode(item)

		case r.Method == http.MethodDelete && id != "":
			if _, ok := b.items[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"message":"todo not found"}`))
				return
			}
			delete(b.items, id)
			for i, key := range b.order {
				if key == id {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
			_, _ = w.Write([]byte(`{}`))

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func testAdapter(t *testing.T) (*Adapter[testItem], *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client := NewClient(testSessionStore(t), WithBaseURL(srv.URL))
	return NewAdapter[testItem](client, "todos"), backend
}

func TestAdapter_CreateThenListRoundTrip(t *testing.T) {
	adapter, _ := testAdapter(t)
	ctx := context.Background()

	created, err := adapter.Create(ctx, testItem{
		Title:    "Buy milk",
		DueDate:  Now(),
		Priority: "low",
		Status:   "pending",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected server-assigned id on created resource")
	}
	if created.ID != "t1" {
		t.Errorf("ID = %q, want %q", created.ID, "t1")
	}

	list, err := adapter.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List returned %d items, want 1", len(list))
	}
	got := list[0]
	if got.ID != created.ID || got.Title != "Buy milk" || got.Priority != "low" || got.Status != "pending" {
		t.Errorf("Listed item = %+v, want the created record", got)
	}
}

func TestAdapter_UpdateIsFullReplace(t *testing.T) {
	adapter, _ := testAdapter(t)
	ctx := context.Background()

	created, err := adapter.Create(ctx, testItem{
		Title:    "Buy milk",
		Priority: "low",
		Status:   "pending",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated := created
	updated.Status = "completed"
	if _, err := adapter.Update(ctx, created.ID, updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	list, err := adapter.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List returned %d items, want 1", len(list))
	}
	if list[0].Status != "completed" {
		t.Errorf("Status = %q, want %q", list[0].Status, "completed")
	}
	if list[0].Title != "Buy milk" || list[0].Priority != "low" {
		t.Errorf("Other fields changed on update: %+v", list[0])
	}
}

func TestAdapter_DeleteExcludesFromList(t *testing.T) {
	adapter, _ := testAdapter(t)
	ctx := context.Background()

	first, err := adapter.Create(ctx, testItem{Title: "first"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := adapter.Create(ctx, testItem{Title: "second"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := adapter.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list, err := adapter.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List returned %d items, want 1", len(list))
	}
	if list[0].ID != second.ID {
		t.Errorf("Remaining item = %q, want %q", list[0].ID, second.ID)
	}
}

func TestAdapter_DeleteMissingID(t *testing.T) {
	adapter, _ := testAdapter(t)

	err := adapter.Delete(context.Background(), "missing")
	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("Expected *ResourceError, got %T: %v", err, err)
	}
	if resErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", resErr.Status, http.StatusNotFound)
	}
	if resErr.Message != "todo not found" {
		t.Errorf("Message = %q, want server-supplied message", resErr.Message)
	}
}

func TestAdapter_ListEmptyCollection(t *testing.T) {
	adapter, _ := testAdapter(t)

	list, err := adapter.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list == nil {
		t.Error("Expected non-nil empty slice from List")
	}
	if len(list) != 0 {
		t.Errorf("List returned %d items, want 0", len(list))
	}
}

func TestAdapter_UnauthenticatedRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"no token provided"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(testSessionStore(t), WithBaseURL(srv.URL))
	adapter := NewAdapter[testItem](client, "todos")

	_, err := adapter.List(context.Background())
	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("Expected *ResourceError, got %T: %v", err, err)
	}
	if resErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", resErr.Status, http.StatusUnauthorized)
	}
}
