package events

import (
	"errors"
	"time"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/collection"
)

// ErrEndBeforeStart rejects events whose end precedes their start.
var ErrEndBeforeStart = errors.New("event ends before it starts")

// NewAdapter returns the CRUD adapter for the events collection.
func NewAdapter(client *api.Client) *api.Adapter[Event] {
	return api.NewAdapter[Event](client, Path)
}

// Kind describes event drafts: new events default to medium priority
// with both dates set to now, and an event never submits with its end
// before its start.
func Kind() collection.Kind[Event] {
	return collection.Kind[Event]{
		Name:      Path,
		NewDraft:  newDraft,
		Normalize: normalize,
		Validate:  validate,
	}
}

// NewController returns an editing controller for the events collection.
func NewController(client *api.Client, opts ...collection.Option[Event]) *collection.Controller[Event] {
	return collection.NewController(Kind(), NewAdapter(client), opts...)
}

func newDraft(now time.Time) Event {
	return Event{
		StartDate: api.At(now),
		EndDate:   api.At(now),
		Priority:  api.PriorityMedium,
	}
}

func normalize(e Event, now time.Time) Event {
	if e.Priority == "" {
		e.Priority = api.PriorityMedium
	}
	if e.StartDate.IsZero() {
		e.StartDate = api.At(now)
	}
	if e.EndDate.IsZero() {
		e.EndDate = e.StartDate
	}
	return e
}

func validate(e Event) error {
	if e.EndDate.Before(e.StartDate.Time) {
		return ErrEndBeforeStart
	}
	return nil
}
