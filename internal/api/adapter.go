package api

import (
	"context"
	"fmt"
	"net/http"
)

// Adapter is the generic CRUD binding for one resource collection. It
// is parameterized only by the REST path segment the collection lives
// under ("todos", "notes", "events", "reminders"); every operation is a
// thin typed wrapper over the shared client.
type Adapter[T any] struct {
	client *Client
	path   string
}

// NewAdapter creates a CRUD adapter for the given collection path
// segment.
func NewAdapter[T any](client *Client, path string) *Adapter[T] {
	return &Adapter[T]{client: client, path: path}
}

// Path returns the collection path segment this adapter is bound to.
func (a *Adapter[T]) Path() string {
	return a.path
}

// List fetches the full collection. The backend returns the
// authoritative ordering; the result replaces any client-side snapshot
// wholesale.
func (a *Adapter[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := a.client.Do(ctx, http.MethodGet, "/"+a.path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", a.path, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Create stores a new resource and returns it with the server-assigned
// identifier.
func (a *Adapter[T]) Create(ctx context.Context, fields T) (T, error) {
	var out T
	if err := a.client.Do(ctx, http.MethodPost, "/"+a.path, fields, &out); err != nil {
		return out, fmt.Errorf("failed to create %s resource: %w", a.path, err)
	}
	return out, nil
}

// Update replaces the full document for id with fields and returns the
// stored resource. The backend overwrites with the supplied body; this
// is not a partial patch.
func (a *Adapter[T]) Update(ctx context.Context, id string, fields T) (T, error) {
	var out T
	if err := a.client.Do(ctx, http.MethodPut, "/"+a.path+"/"+id, fields, &out); err != nil {
		return out, fmt.Errorf("failed to update %s resource %s: %w", a.path, id, err)
	}
	return out, nil
}

// Delete removes the resource with the given id.
func (a *Adapter[T]) Delete(ctx context.Context, id string) error {
	if err := a.client.Do(ctx, http.MethodDelete, "/"+a.path+"/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete %s resource %s: %w", a.path, id, err)
	}
	return nil
}
