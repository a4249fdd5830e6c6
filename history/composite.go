// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

// Composite groups an ordered list of sub-actions into one undo/redo unit,
// so that a user gesture touching several items (paste, group recolor)
// inverts as a whole.
//
// Ordering is fixed: Redo applies sub-actions first to last, Undo reverses
// them last to first. That keeps cross-dependent sub-edits correct, e.g.
// "create item A" followed by "recolor A".
type Composite struct {
	name    string
	actions []Action
}

// NewComposite creates an empty composite with a display name.
func NewComposite(name string) *Composite {
	return &Composite{name: name}
}

// Append adds a sub-action at the end of the composite. Nil actions are
// ignored.
func (c *Composite) Append(a Action) {
	if a == nil {
		return
	}
	c.actions = append(c.actions, a)
}

// Len returns the number of sub-actions.
func (c *Composite) Len() int { return len(c.actions) }

// Empty reports whether the composite holds no sub-actions.
func (c *Composite) Empty() bool { return len(c.actions) == 0 }

func (*Composite) actionMarker() {}

// Name implements Action.
func (c *Composite) Name() string { return c.name }

// Undo implements Action: sub-actions are undone in reverse order.
func (c *Composite) Undo() {
	for i := len(c.actions) - 1; i >= 0; i-- {
		c.actions[i].Undo()
	}
}

// Redo implements Action: sub-actions are redone in forward order.
func (c *Composite) Redo() {
	for _, a := range c.actions {
		a.Redo()
	}
}
