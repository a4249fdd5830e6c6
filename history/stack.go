// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import "github.com/gogpu/sketch"

// Stack holds the undo and redo stacks and enforces their discipline:
//
//   - Push records a new action and clears the redo stack. Branching
//     history is not supported.
//   - Undo pops the undo stack, reverses the action, and pushes it onto
//     the redo stack.
//   - Redo pops the redo stack, re-applies the action, and pushes it back
//     onto the undo stack.
//
// Undo and Redo on an empty stack are no-ops returning false.
type Stack struct {
	undo  []Action
	redo  []Action
	limit int
}

// NewStack creates a Stack with unlimited depth.
func NewStack() *Stack {
	return &Stack{}
}

// NewStackWithLimit creates a Stack that retains at most limit undoable
// actions, dropping the oldest when full. A limit <= 0 means unlimited.
func NewStackWithLimit(limit int) *Stack {
	return &Stack{limit: limit}
}

// Push records a, whose forward effect has already happened, and clears
// the redo stack. Nil actions are ignored.
func (s *Stack) Push(a Action) {
	if a == nil {
		return
	}
	s.redo = s.redo[:0]
	s.undo = append(s.undo, a)
	if s.limit > 0 && len(s.undo) > s.limit {
		// Drop the oldest action; its edit becomes permanent.
		copy(s.undo, s.undo[1:])
		s.undo = s.undo[:len(s.undo)-1]
	}
}

// Undo reverses the most recent action. It reports whether an action was
// undone.
func (s *Stack) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	a := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	a.Undo()
	s.redo = append(s.redo, a)
	sketch.Logger().Debug("history: undo", "action", a.Name())
	return true
}

// Redo re-applies the most recently undone action. It reports whether an
// action was redone.
func (s *Stack) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	a := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	a.Redo()
	s.undo = append(s.undo, a)
	sketch.Logger().Debug("history: redo", "action", a.Name())
	return true
}

// CanUndo reports whether an undoable action exists.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redoable action exists.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// UndoDepth returns the number of undoable actions.
func (s *Stack) UndoDepth() int { return len(s.undo) }

// RedoDepth returns the number of redoable actions.
func (s *Stack) RedoDepth() int { return len(s.redo) }

// Clear discards both stacks. Used when the scene is replaced wholesale,
// e.g. on project load.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}
