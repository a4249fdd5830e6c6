// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package history

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/layer"
	"github.com/gogpu/sketch/store"
)

// CreateAction records that an item was added to the scene. The caller has
// already registered the item and assigned it to a layer; the action only
// remembers how to take it back out (and bring it back).
//
// On Undo the item leaves its layer and is scheduled for deletion with a
// snapshot retained, so Redo can restore it. The backing memory is owned by
// the store's snapshot set while the action sits on the redo side.
type CreateAction struct {
	store *store.Store
	layer *layer.Layer
	id    store.ItemID
}

// NewCreateAction records the creation of id, already placed on l.
func NewCreateAction(s *store.Store, l *layer.Layer, id store.ItemID) *CreateAction {
	return &CreateAction{store: s, layer: l, id: id}
}

func (*CreateAction) actionMarker() {}

// Name implements Action.
func (*CreateAction) Name() string { return "create" }

// Undo implements Action.
func (a *CreateAction) Undo() {
	if a.layer != nil {
		a.layer.RemoveItem(a.id)
	}
	a.store.ScheduleDelete(a.id, true)
}

// Redo implements Action.
func (a *CreateAction) Redo() {
	if !a.store.Restore(a.id) {
		return
	}
	if a.layer != nil {
		a.layer.AddItem(a.id)
	}
}

// DeleteAction records that an item was removed from the scene with its
// snapshot retained. It is the exact inverse of CreateAction.
type DeleteAction struct {
	store *store.Store
	layer *layer.Layer
	id    store.ItemID
}

// NewDeleteAction records the deletion of id, formerly a member of l. The
// caller has already removed the item from l and scheduled the delete with
// keepSnapshot set.
func NewDeleteAction(s *store.Store, l *layer.Layer, id store.ItemID) *DeleteAction {
	return &DeleteAction{store: s, layer: l, id: id}
}

func (*DeleteAction) actionMarker() {}

// Name implements Action.
func (*DeleteAction) Name() string { return "delete" }

// Undo implements Action.
func (a *DeleteAction) Undo() {
	if !a.store.Restore(a.id) {
		return
	}
	if a.layer != nil {
		a.layer.AddItem(a.id)
	}
}

// Redo implements Action.
func (a *DeleteAction) Redo() {
	if a.layer != nil {
		a.layer.RemoveItem(a.id)
	}
	a.store.ScheduleDelete(a.id, true)
}

// MoveAction records a position change as an old/new pair.
// If the item has vanished by the time Undo or Redo runs, the action is a
// silent no-op - a stale reference is a normal outcome, not an error.
type MoveAction struct {
	store    *store.Store
	id       store.ItemID
	from, to sketch.Point
}

// NewMoveAction records a move of id from one position to another.
func NewMoveAction(s *store.Store, id store.ItemID, from, to sketch.Point) *MoveAction {
	return &MoveAction{store: s, id: id, from: from, to: to}
}

func (*MoveAction) actionMarker() {}

// Name implements Action.
func (*MoveAction) Name() string { return "move" }

// Undo implements Action.
func (a *MoveAction) Undo() {
	if item := a.store.Resolve(a.id); item != nil {
		item.SetPosition(a.from)
	}
}

// Redo implements Action.
func (a *MoveAction) Redo() {
	if item := a.store.Resolve(a.id); item != nil {
		item.SetPosition(a.to)
	}
}

// TransformAction records an affine transform change as an old/new pair.
type TransformAction struct {
	store    *store.Store
	id       store.ItemID
	from, to sketch.Matrix
}

// NewTransformAction records a transform change on id.
func NewTransformAction(s *store.Store, id store.ItemID, from, to sketch.Matrix) *TransformAction {
	return &TransformAction{store: s, id: id, from: from, to: to}
}

func (*TransformAction) actionMarker() {}

// Name implements Action.
func (*TransformAction) Name() string { return "transform" }

// Undo implements Action.
func (a *TransformAction) Undo() {
	if item := a.store.Resolve(a.id); item != nil {
		item.SetTransform(a.from)
	}
}

// Redo implements Action.
func (a *TransformAction) Redo() {
	if item := a.store.Resolve(a.id); item != nil {
		item.SetTransform(a.to)
	}
}

// RecolorAction records a paint change as an old/new pair of PaintSpec
// values. The closed paint union makes this uniform across item kinds.
type RecolorAction struct {
	store    *store.Store
	id       store.ItemID
	from, to sketch.PaintSpec
}

// NewRecolorAction records a paint change on id.
func NewRecolorAction(s *store.Store, id store.ItemID, from, to sketch.PaintSpec) *RecolorAction {
	return &RecolorAction{store: s, id: id, from: from, to: to}
}

func (*RecolorAction) actionMarker() {}

// Name implements Action.
func (*RecolorAction) Name() string { return "recolor" }

// Undo implements Action.
func (a *RecolorAction) Undo() {
	if item := a.store.Resolve(a.id); item != nil {
		item.SetPaint(a.from)
	}
}

// Redo implements Action.
func (a *RecolorAction) Redo() {
	if item := a.store.Resolve(a.id); item != nil {
		item.SetPaint(a.to)
	}
}
