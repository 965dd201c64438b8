// Package events binds the calendar events collection to the generic
// editing controller. Events are the only collection with a validation
// rule: the end date must not precede the start date.
package events
