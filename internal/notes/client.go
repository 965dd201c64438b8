package notes

import (
	"strings"
	"time"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/collection"
)

// NewAdapter returns the CRUD adapter for the notes collection.
func NewAdapter(client *api.Client) *api.Adapter[Note] {
	return api.NewAdapter[Note](client, Path)
}

// Kind describes note drafts: new notes default to the standard
// background color and an empty tag list.
func Kind() collection.Kind[Note] {
	return collection.Kind[Note]{
		Name:      Path,
		NewDraft:  newDraft,
		Normalize: normalize,
	}
}

// NewController returns an editing controller for the notes collection.
func NewController(client *api.Client, opts ...collection.Option[Note]) *collection.Controller[Note] {
	return collection.NewController(Kind(), NewAdapter(client), opts...)
}

func newDraft(time.Time) Note {
	return Note{Tags: []string{}, Color: DefaultColor}
}

func normalize(n Note, _ time.Time) Note {
	if n.Color == "" {
		n.Color = DefaultColor
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return n
}

// ParseTags splits a comma-separated tag string into a clean tag list.
// Blank segments are dropped.
func ParseTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
