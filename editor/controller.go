// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package editor provides the mutation facade for the scene model.
//
// Controller is the single sanctioned entry point for tools and
// serializers: every add, remove, move, transform and recolor goes through
// it, so the item store, the layer list and the undo history can never
// drift apart. Deletion is deferred: removal requests mark a flush as
// wanted, and the host drains the pending queue with FlushPending at a
// safe point of its own choosing, typically after the current input event
// has fully dispatched.
package editor

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/history"
	"github.com/gogpu/sketch/layer"
	"github.com/gogpu/sketch/store"
)

// Controller composes the item store, the layer manager and the undo
// history into one consistent mutation surface.
//
// Controller is not safe for concurrent use; like the rest of the scene
// model it expects the host's event-loop goroutine.
type Controller struct {
	store   *store.Store
	layers  *layer.Manager
	history *history.Stack

	// flushWanted coalesces any number of removal requests made during
	// one event dispatch into a single FlushPending.
	flushWanted bool

	// gesture collects actions into a composite between BeginGesture and
	// EndGesture. Nil outside a gesture.
	gesture *history.Composite
}

// NewController creates a Controller with an empty store, a single layer
// named "Layer 1", and an unlimited undo stack.
func NewController() *Controller {
	c := &Controller{
		store:   store.NewStore(),
		layers:  nil,
		history: history.NewStack(),
	}
	c.layers = layer.NewManager(c.store)
	c.layers.SetItemRemover(c.removeFromScene)
	c.layers.CreateLayer("Layer 1", layer.KindVector)
	return c
}

// Store returns the underlying item store, e.g. for installing observers.
func (c *Controller) Store() *store.Store { return c.store }

// Layers returns the layer manager.
func (c *Controller) Layers() *layer.Manager { return c.layers }

// History returns the undo stack.
func (c *Controller) History() *history.Stack { return c.history }

// record pushes an action onto the history, or onto the open gesture
// composite if one is active.
func (c *Controller) record(a history.Action) {
	if c.gesture != nil {
		c.gesture.Append(a)
		return
	}
	c.history.Push(a)
}

// BeginGesture starts collecting subsequent edits into one composite undo
// unit (paste, group recolor). Gestures do not nest: calling BeginGesture
// with one already open ends the previous gesture first.
func (c *Controller) BeginGesture(name string) {
	if c.gesture != nil {
		c.EndGesture()
	}
	c.gesture = history.NewComposite(name)
}

// EndGesture closes the open gesture and pushes it as a single action.
// An empty or absent gesture pushes nothing.
func (c *Controller) EndGesture() {
	g := c.gesture
	c.gesture = nil
	if g == nil || g.Empty() {
		return
	}
	c.history.Push(g)
}

// AddItem registers item, assigns it to target (or the active layer when
// target is nil) and records an undoable create. It returns the minted ID.
func (c *Controller) AddItem(item sketch.Item, target *layer.Layer) (store.ItemID, bool) {
	if item == nil {
		return store.NilID, false
	}
	id := c.store.Register(item)
	l := target
	if l == nil {
		l = c.layers.ActiveLayer()
	}
	if l != nil {
		l.AddItem(id)
	}
	c.record(history.NewCreateAction(c.store, l, id))
	return id, true
}

// RemoveItem takes id out of its owning layer and schedules its deletion.
// With keepForUndo the snapshot is retained and a DeleteAction is recorded;
// otherwise the item goes straight to the pending queue and a flush is
// requested. Unknown or already-removed IDs return false.
func (c *Controller) RemoveItem(id store.ItemID, keepForUndo bool) bool {
	if c.store.Resolve(id) == nil {
		return false
	}
	owner := c.layers.LayerOf(id)
	if owner != nil {
		owner.RemoveItem(id)
	}
	c.store.ScheduleDelete(id, keepForUndo)
	if keepForUndo {
		c.record(history.NewDeleteAction(c.store, owner, id))
	} else {
		c.flushWanted = true
	}
	return true
}

// RestoreItem brings a snapshotted item back to the live set. It returns
// false once the snapshot is gone (after ClearAll or a redo-side drop).
func (c *Controller) RestoreItem(id store.ItemID) bool {
	return c.store.Restore(id)
}

// MoveItem sets the item's position and records an undoable move.
func (c *Controller) MoveItem(id store.ItemID, pos sketch.Point) bool {
	item := c.store.Resolve(id)
	if item == nil {
		return false
	}
	old := item.Position()
	item.SetPosition(pos)
	c.record(history.NewMoveAction(c.store, id, old, pos))
	sketch.Logger().Debug("editor: item moved", "id", id.String())
	return true
}

// TransformItem sets the item's affine transform and records an undoable
// transform.
func (c *Controller) TransformItem(id store.ItemID, m sketch.Matrix) bool {
	item := c.store.Resolve(id)
	if item == nil {
		return false
	}
	old := item.Transform()
	item.SetTransform(m)
	c.record(history.NewTransformAction(c.store, id, old, m))
	sketch.Logger().Debug("editor: item transformed", "id", id.String())
	return true
}

// RecolorItem sets the item's paint attributes and records an undoable
// recolor.
func (c *Controller) RecolorItem(id store.ItemID, p sketch.PaintSpec) bool {
	item := c.store.Resolve(id)
	if item == nil {
		return false
	}
	old := item.Paint()
	item.SetPaint(p)
	c.record(history.NewRecolorAction(c.store, id, old, p))
	sketch.Logger().Debug("editor: item recolored", "id", id.String())
	return true
}

// Undo reverses the most recent recorded action.
func (c *Controller) Undo() bool { return c.history.Undo() }

// Redo re-applies the most recently undone action.
func (c *Controller) Redo() bool { return c.history.Redo() }

// NeedsFlush reports whether removals since the last flush requested one.
func (c *Controller) NeedsFlush() bool { return c.flushWanted }

// FlushPending drains the store's pending-deletion queue, returning the
// number of items destroyed. The host calls this from a point known to be
// free of outstanding item references, e.g. after dispatching the current
// input event.
func (c *Controller) FlushPending() int {
	c.flushWanted = false
	return c.store.FlushDeletions()
}

// removeFromScene is wired into the layer manager so DeleteLayer moves
// member items out of the scene through the same deferred path.
func (c *Controller) removeFromScene(id store.ItemID) {
	c.store.ScheduleDelete(id, false)
	c.flushWanted = true
}

// ClearAll empties the whole scene: every item is scheduled and flushed
// immediately (no other component can hold references at this point, which
// is why only project load uses it), the history is discarded, and the
// layer list resets to a single empty "Layer 1".
func (c *Controller) ClearAll() {
	c.store.Clear()
	c.store.FlushDeletions()
	c.history.Clear()
	c.layers.Reset()
	c.layers.CreateLayer("Layer 1", layer.KindVector)
	c.flushWanted = false
	sketch.Logger().Info("editor: scene cleared")
}
