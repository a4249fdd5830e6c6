// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"testing"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/layer"
	"github.com/gogpu/sketch/store"
)

func newShape() sketch.Item {
	return sketch.NewShape(sketch.ShapeRectangle, sketch.RectXYWH(0, 0, 10, 10))
}

func TestControllerStartsWithOneLayer(t *testing.T) {
	c := NewController()
	if got := c.Layers().LayerCount(); got != 1 {
		t.Fatalf("LayerCount() = %d, want 1", got)
	}
	if got := c.Layers().ActiveLayer().Name(); got != "Layer 1" {
		t.Errorf("active layer name = %q, want %q", got, "Layer 1")
	}
}

func TestAddItemDefaultsToActiveLayer(t *testing.T) {
	c := NewController()
	id, ok := c.AddItem(newShape(), nil)
	if !ok {
		t.Fatal("AddItem = false")
	}
	if got := c.Layers().LayerOf(id); got != c.Layers().ActiveLayer() {
		t.Errorf("LayerOf = %v, want the active layer", got)
	}
	if c.Store().Resolve(id) == nil {
		t.Error("added item does not resolve")
	}
	if !c.History().CanUndo() {
		t.Error("AddItem did not record an undoable action")
	}
}

func TestAddItemExplicitLayer(t *testing.T) {
	c := NewController()
	ink := c.Layers().CreateLayer("Ink", layer.KindVector)
	id, _ := c.AddItem(newShape(), ink)
	if got := c.Layers().LayerOf(id); got != ink {
		t.Errorf("LayerOf = %v, want the Ink layer", got)
	}
}

func TestAddItemNil(t *testing.T) {
	c := NewController()
	id, ok := c.AddItem(nil, nil)
	if ok || !id.IsNil() {
		t.Errorf("AddItem(nil) = %s, %v, want NilID, false", id, ok)
	}
}

func TestRemoveItemDeferredFlush(t *testing.T) {
	c := NewController()
	id, _ := c.AddItem(newShape(), nil)

	if !c.RemoveItem(id, false) {
		t.Fatal("RemoveItem = false")
	}
	// Resolution fails immediately, destruction waits for the flush.
	if c.Store().Resolve(id) != nil {
		t.Error("removed item still resolves")
	}
	if !c.NeedsFlush() {
		t.Error("NeedsFlush() = false after non-undoable removal")
	}
	if got := c.Store().PendingCount(); got != 1 {
		t.Errorf("PendingCount() = %d, want 1", got)
	}

	if got := c.FlushPending(); got != 1 {
		t.Errorf("FlushPending() = %d, want 1", got)
	}
	if c.NeedsFlush() {
		t.Error("NeedsFlush() = true after flush")
	}
}

func TestRemoveItemCoalescesFlushes(t *testing.T) {
	c := NewController()
	ids := make([]store.ItemID, 5)
	for i := range ids {
		ids[i], _ = c.AddItem(newShape(), nil)
	}
	// Several removals within one dispatch coalesce into a single flush.
	for _, id := range ids {
		c.RemoveItem(id, false)
	}
	if got := c.FlushPending(); got != len(ids) {
		t.Errorf("FlushPending() = %d, want %d", got, len(ids))
	}
	if got := c.FlushPending(); got != 0 {
		t.Errorf("second FlushPending() = %d, want 0", got)
	}
}

func TestRemoveItemInvalid(t *testing.T) {
	c := NewController()
	id, _ := c.AddItem(newShape(), nil)
	c.RemoveItem(id, false)

	if c.RemoveItem(id, false) {
		t.Error("double RemoveItem = true, want false")
	}
	if c.RemoveItem(store.NilID, false) {
		t.Error("RemoveItem(NilID) = true, want false")
	}
	if c.RemoveItem(store.NewItemID(), true) {
		t.Error("RemoveItem(unknown) = true, want false")
	}
}

func TestRemoveUndoRedo(t *testing.T) {
	c := NewController()
	item := newShape()
	id, _ := c.AddItem(item, nil)

	if !c.RemoveItem(id, true) {
		t.Fatal("RemoveItem = false")
	}
	if c.Store().Resolve(id) != nil {
		t.Fatal("removed item still resolves")
	}

	if !c.Undo() {
		t.Fatal("Undo() = false")
	}
	if got := c.Store().Resolve(id); got != item {
		t.Errorf("Resolve after undo = %v, want the original item", got)
	}
	if got := c.Layers().LayerOf(id); got == nil {
		t.Error("restored item is not in any layer")
	}

	if !c.Redo() {
		t.Fatal("Redo() = false")
	}
	if c.Store().Resolve(id) != nil {
		t.Error("item resolves after redo of delete")
	}
}

func TestAddUndoRedoSymmetry(t *testing.T) {
	c := NewController()
	item := newShape()
	id, _ := c.AddItem(item, nil)
	liveBefore := c.Store().LiveCount()

	c.Undo()
	if c.Store().Resolve(id) != nil {
		t.Error("item resolves after undo of add")
	}
	c.Redo()
	if got := c.Store().Resolve(id); got != item {
		t.Errorf("Resolve after redo = %v, want the original item", got)
	}
	if got := c.Store().LiveCount(); got != liveBefore {
		t.Errorf("LiveCount() = %d, want %d", got, liveBefore)
	}
}

func TestMoveItemUndo(t *testing.T) {
	c := NewController()
	id, _ := c.AddItem(newShape(), nil)

	c.MoveItem(id, sketch.Pt(10, 10))
	c.MoveItem(id, sketch.Pt(20, 20))
	c.Undo()
	c.Undo()
	if got := c.Store().Resolve(id).Position(); got != sketch.Pt(0, 0) {
		t.Errorf("position after undos = %v, want (0,0)", got)
	}
	c.Redo()
	c.Redo()
	if got := c.Store().Resolve(id).Position(); got != sketch.Pt(20, 20) {
		t.Errorf("position after redos = %v, want (20,20)", got)
	}

	if c.MoveItem(store.NewItemID(), sketch.Pt(1, 1)) {
		t.Error("MoveItem(unknown) = true, want false")
	}
}

func TestTransformItem(t *testing.T) {
	c := NewController()
	id, _ := c.AddItem(newShape(), nil)
	m := sketch.Rotate(1.5)

	if !c.TransformItem(id, m) {
		t.Fatal("TransformItem = false")
	}
	if got := c.Store().Resolve(id).Transform(); got != m {
		t.Errorf("Transform() = %+v, want %+v", got, m)
	}
	c.Undo()
	if got := c.Store().Resolve(id).Transform(); !got.IsIdentity() {
		t.Errorf("Transform() after undo = %+v, want identity", got)
	}
}

func TestRecolorItem(t *testing.T) {
	c := NewController()
	id, _ := c.AddItem(newShape(), nil)
	p := sketch.Stroke(sketch.RGB(1, 0, 0), 2)

	if !c.RecolorItem(id, p) {
		t.Fatal("RecolorItem = false")
	}
	if got := c.Store().Resolve(id).Paint(); got != sketch.PaintSpec(p) {
		t.Errorf("Paint() = %v, want %v", got, p)
	}
	c.Undo()
	if got := c.Store().Resolve(id).Paint().Kind(); got != sketch.PaintFill {
		t.Errorf("Paint().Kind() after undo = %v, want the default fill", got)
	}
}

func TestRestoreItemAfterFlushFails(t *testing.T) {
	c := NewController()
	id, _ := c.AddItem(newShape(), nil)
	c.RemoveItem(id, false)
	c.FlushPending()

	if c.RestoreItem(id) {
		t.Error("RestoreItem after flush = true, want false")
	}
}

func TestGestureCompositeUndo(t *testing.T) {
	c := NewController()
	c.BeginGesture("paste")
	a, _ := c.AddItem(newShape(), nil)
	b, _ := c.AddItem(newShape(), nil)
	c.MoveItem(a, sketch.Pt(5, 5))
	c.EndGesture()

	if got := c.History().UndoDepth(); got != 1 {
		t.Fatalf("UndoDepth() = %d, want 1 composite", got)
	}
	c.Undo()
	if c.Store().Resolve(a) != nil || c.Store().Resolve(b) != nil {
		t.Error("gesture items still live after single undo")
	}
	c.Redo()
	if c.Store().Resolve(a) == nil || c.Store().Resolve(b) == nil {
		t.Error("gesture items not live after redo")
	}
	if got := c.Store().Resolve(a).Position(); got != sketch.Pt(5, 5) {
		t.Errorf("position after gesture redo = %v, want (5,5)", got)
	}
}

func TestEmptyGesturePushesNothing(t *testing.T) {
	c := NewController()
	c.BeginGesture("noop")
	c.EndGesture()
	if c.History().CanUndo() {
		t.Error("empty gesture recorded an action")
	}
}

func TestDeleteLayerGoesThroughDeferredPath(t *testing.T) {
	c := NewController()
	ink := c.Layers().CreateLayer("Ink", layer.KindVector)
	id, _ := c.AddItem(newShape(), ink)

	if !c.Layers().DeleteLayer(1) {
		t.Fatal("DeleteLayer(1) = false")
	}
	if c.Store().Resolve(id) != nil {
		t.Error("layer member still resolves after DeleteLayer")
	}
	if !c.NeedsFlush() {
		t.Error("NeedsFlush() = false after DeleteLayer removed items")
	}
	if got := c.FlushPending(); got != 1 {
		t.Errorf("FlushPending() = %d, want 1", got)
	}
}

func TestClearAll(t *testing.T) {
	c := NewController()
	c.Layers().CreateLayer("Ink", layer.KindVector)
	id, _ := c.AddItem(newShape(), nil)
	snap, _ := c.AddItem(newShape(), nil)
	c.RemoveItem(snap, true)

	c.ClearAll()
	if got := c.Store().LiveCount(); got != 0 {
		t.Errorf("LiveCount() = %d, want 0", got)
	}
	if got := c.Store().SnapshotCount(); got != 0 {
		t.Errorf("SnapshotCount() = %d, want 0", got)
	}
	if got := c.Store().PendingCount(); got != 0 {
		t.Errorf("PendingCount() = %d, want 0", got)
	}
	if c.History().CanUndo() || c.History().CanRedo() {
		t.Error("history not empty after ClearAll")
	}
	if got := c.Layers().LayerCount(); got != 1 {
		t.Errorf("LayerCount() = %d, want 1", got)
	}
	if c.Store().Resolve(id) != nil {
		t.Error("pre-clear item still resolves")
	}
}

// TestRegistryLayerConsistency checks the facade guarantee: after any call
// returns, no layer claims an ID the store reports as non-live.
func TestRegistryLayerConsistency(t *testing.T) {
	c := NewController()
	ink := c.Layers().CreateLayer("Ink", layer.KindVector)
	var ids []store.ItemID
	for i := 0; i < 4; i++ {
		id, _ := c.AddItem(newShape(), ink)
		ids = append(ids, id)
	}
	c.RemoveItem(ids[1], true)
	c.RemoveItem(ids[2], false)
	c.FlushPending()
	c.Undo() // brings ids[1] back

	for i := 0; i < c.Layers().LayerCount(); i++ {
		l := c.Layers().LayerAt(i)
		for _, id := range l.ItemIDs() {
			if c.Store().Resolve(id) == nil {
				t.Errorf("layer %d claims non-live ID %s", i, id)
			}
		}
	}
}
