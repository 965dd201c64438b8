package notes

// Path is the notes collection path under the API prefix.
const Path = "notes"

// DefaultColor is the background color new notes start with.
const DefaultColor = "#FFE4B5"

// Note is one note document as the backend stores it.
type Note struct {
	ID      string   `json:"_id,omitempty"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Color   string   `json:"color"`
}

// ResourceID returns the server-assigned id, empty for unsaved drafts.
func (n Note) ResourceID() string { return n.ID }
