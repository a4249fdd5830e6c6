// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import "testing"

// probeAction records undo/redo calls into a shared trace for ordering
// assertions.
type probeAction struct {
	name  string
	trace *[]string
}

func (*probeAction) actionMarker() {}

func (a *probeAction) Name() string { return a.name }

func (a *probeAction) Undo() { *a.trace = append(*a.trace, "undo "+a.name) }

func (a *probeAction) Redo() { *a.trace = append(*a.trace, "redo "+a.name) }

func TestStackDiscipline(t *testing.T) {
	var trace []string
	s := NewStack()
	s.Push(&probeAction{name: "A", trace: &trace})
	s.Push(&probeAction{name: "B", trace: &trace})

	if !s.CanUndo() || s.CanRedo() {
		t.Fatalf("CanUndo/CanRedo = %v/%v, want true/false", s.CanUndo(), s.CanRedo())
	}

	if !s.Undo() {
		t.Fatal("Undo() = false with non-empty stack")
	}
	if !s.Undo() {
		t.Fatal("second Undo() = false")
	}
	if s.Undo() {
		t.Error("Undo() on empty stack = true, want false")
	}
	if !s.Redo() || !s.Redo() {
		t.Fatal("Redo() = false with non-empty redo stack")
	}
	if s.Redo() {
		t.Error("Redo() on empty stack = true, want false")
	}

	want := []string{"undo B", "undo A", "redo A", "redo B"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
}

func TestPushClearsRedo(t *testing.T) {
	var trace []string
	s := NewStack()
	s.Push(&probeAction{name: "A", trace: &trace})
	s.Undo()
	if !s.CanRedo() {
		t.Fatal("CanRedo() = false after Undo")
	}

	s.Push(&probeAction{name: "B", trace: &trace})
	if s.CanRedo() {
		t.Error("CanRedo() = true after Push, want branching history cleared")
	}
	if got := s.RedoDepth(); got != 0 {
		t.Errorf("RedoDepth() = %d, want 0", got)
	}
}

func TestPushNil(t *testing.T) {
	s := NewStack()
	s.Push(nil)
	if s.CanUndo() {
		t.Error("CanUndo() = true after Push(nil)")
	}
}

func TestStackLimit(t *testing.T) {
	var trace []string
	s := NewStackWithLimit(2)
	s.Push(&probeAction{name: "A", trace: &trace})
	s.Push(&probeAction{name: "B", trace: &trace})
	s.Push(&probeAction{name: "C", trace: &trace})

	if got := s.UndoDepth(); got != 2 {
		t.Fatalf("UndoDepth() = %d, want 2", got)
	}
	// A fell off the bottom; only C and B unwind.
	s.Undo()
	s.Undo()
	want := []string{"undo C", "undo B"}
	if len(trace) != len(want) || trace[0] != want[0] || trace[1] != want[1] {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}

func TestStackClear(t *testing.T) {
	var trace []string
	s := NewStack()
	s.Push(&probeAction{name: "A", trace: &trace})
	s.Undo()
	s.Push(&probeAction{name: "B", trace: &trace})
	s.Clear()
	if s.CanUndo() || s.CanRedo() {
		t.Errorf("CanUndo/CanRedo after Clear = %v/%v, want false/false",
			s.CanUndo(), s.CanRedo())
	}
}
