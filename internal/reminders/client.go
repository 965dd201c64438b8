package reminders

import (
	"time"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/collection"
)

// NewAdapter returns the CRUD adapter for the reminders collection.
func NewAdapter(client *api.Client) *api.Adapter[Reminder] {
	return api.NewAdapter[Reminder](client, Path)
}

// Kind describes reminder drafts: new reminders start incomplete with
// medium priority and a due date of now.
func Kind() collection.Kind[Reminder] {
	return collection.Kind[Reminder]{
		Name:      Path,
		NewDraft:  newDraft,
		Normalize: normalize,
	}
}

// NewController returns an editing controller for the reminders
// collection.
func NewController(client *api.Client, opts ...collection.Option[Reminder]) *collection.Controller[Reminder] {
	return collection.NewController(Kind(), NewAdapter(client), opts...)
}

func newDraft(now time.Time) Reminder {
	return Reminder{
		DueDate:  api.At(now),
		Priority: api.PriorityMedium,
	}
}

func normalize(r Reminder, now time.Time) Reminder {
	if r.Priority == "" {
		r.Priority = api.PriorityMedium
	}
	if r.DueDate.IsZero() {
		r.DueDate = api.At(now)
	}
	return r
}
