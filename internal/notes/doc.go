// Package notes binds the notes collection to the generic editing
// controller.
package notes
