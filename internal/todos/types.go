package todos

import "github.com/teemow/daybook/internal/api"

// Path is the todos collection path under the API prefix.
const Path = "todos"

// Todo statuses accepted by the backend.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Todo is one task document as the backend stores it.
type Todo struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     api.Time `json:"dueDate"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
}

// ResourceID returns the server-assigned id, empty for unsaved drafts.
func (t Todo) ResourceID() string { return t.ID }
