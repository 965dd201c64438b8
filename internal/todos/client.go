package todos

import (
	"time"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/collection"
)

// NewAdapter returns the CRUD adapter for the todos collection.
func NewAdapter(client *api.Client) *api.Adapter[Todo] {
	return api.NewAdapter[Todo](client, Path)
}

// Kind describes todo drafts: new todos default to medium priority,
// pending status and a due date of now.
func Kind() collection.Kind[Todo] {
	return collection.Kind[Todo]{
		Name:      Path,
		NewDraft:  newDraft,
		Normalize: normalize,
	}
}

// NewController returns an editing controller for the todos collection.
func NewController(client *api.Client, opts ...collection.Option[Todo]) *collection.Controller[Todo] {
	return collection.NewController(Kind(), NewAdapter(client), opts...)
}

func newDraft(now time.Time) Todo {
	return Todo{
		DueDate:  api.At(now),
		Priority: api.PriorityMedium,
		Status:   StatusPending,
	}
}

func normalize(t Todo, now time.Time) Todo {
	if t.Priority == "" {
		t.Priority = api.PriorityMedium
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.DueDate.IsZero() {
		t.DueDate = api.At(now)
	}
	return t
}
