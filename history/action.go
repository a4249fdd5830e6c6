// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package history implements reversible edit commands and the undo/redo
// stacks that replay them.
//
// An Action never performs its forward effect itself: the caller (typically
// the editor facade) applies the edit and then records an Action holding
// just enough state to invert and re-apply it. Actions refer to items only
// by ID, so an action whose item has since been destroyed degrades to a
// no-op instead of dangling.
package history

// Action is one reversible unit of change.
// This is a sealed interface - only types in this package implement it.
//
// Lifecycle: the forward effect happens when the edit is made; after that
// the action alternates between Undo and Redo. Undo is only called on an
// applied action, Redo only on an undone one; the Stack enforces this
// discipline.
type Action interface {
	// actionMarker is an unexported method that seals this interface.
	actionMarker()

	// Undo reverses the action's effect.
	Undo()

	// Redo re-applies the action's effect after an Undo.
	Redo()

	// Name returns a short verb for UI display ("move", "delete", ...).
	Name() string
}
