// Package reminders binds the reminders collection to the generic
// editing controller. Reminders carry a completed flag that is toggled
// in place through a full-replace update rather than a draft.
package reminders
