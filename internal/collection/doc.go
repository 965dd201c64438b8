// Package collection implements the editing state machine shared by
// every resource collection (todos, notes, events, reminders).
//
// A Controller owns one collection's fetched items and at most one
// draft. It moves between three states: Idle (no draft), Editing (a
// draft is open and mutable) and Submitting (the draft is frozen while
// a write is in flight). Writes never patch the local items; every
// successful create, update or delete is followed by a refetch so the
// items always reflect what the backend stored.
//
// The per-collection behavior (defaults, normalization, validation)
// is injected through a Kind descriptor, so a single generic
// implementation serves all four collections.
package collection
