package reminders

import "github.com/teemow/daybook/internal/api"

// Path is the reminders collection path under the API prefix.
const Path = "reminders"

// Reminder is one reminder document as the backend stores it.
type Reminder struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     api.Time `json:"dueDate"`
	Priority    string   `json:"priority"`
	Completed   bool     `json:"completed"`
}

// ResourceID returns the server-assigned id, empty for unsaved drafts.
func (r Reminder) ResourceID() string { return r.ID }

// Toggled returns a copy with the completed flag flipped. The copy is
// meant for a full-replace update via Controller.Replace.
func (r Reminder) Toggled() Reminder {
	r.Completed = !r.Completed
	return r
}
