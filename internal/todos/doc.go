// Package todos binds the tasks collection to the generic editing
// controller: the Todo document shape, its draft defaults and its
// normalization rules.
package todos
