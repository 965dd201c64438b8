package events

import "github.com/teemow/daybook/internal/api"

// Path is the events collection path under the API prefix.
const Path = "events"

// Event is one calendar entry as the backend stores it.
type Event struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartDate   api.Time `json:"startDate"`
	EndDate     api.Time `json:"endDate"`
	Location    string   `json:"location"`
	Priority    string   `json:"priority"`
}

// ResourceID returns the server-assigned id, empty for unsaved drafts.
func (e Event) ResourceID() string { return e.ID }
