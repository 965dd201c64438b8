package api

// Priorities accepted by the backend for todos, events and reminders.
// Notes are the only collection without a priority field.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)
