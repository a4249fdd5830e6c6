// Package sketch provides an editable retained scene model for 2D drawing
// applications in the GoGPU ecosystem.
//
// # Overview
//
// sketch is the document side of a drawing app: items (strokes, shapes,
// text, images) live in a stable-ID registry, are grouped into ordered
// layers that derive the paint order, and are mutated through an editor
// facade that records every change for undo/redo. Rendering stays outside:
// a painting surface (such as github.com/gogpu/gg) walks the layers and
// draws the items it resolves.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    "github.com/gogpu/sketch/editor"
//	)
//
//	c := editor.NewController()
//	id, _ := c.AddItem(sketch.NewStroke(points), nil)
//	c.MoveItem(id, sketch.Pt(20, 20))
//	c.Undo()
//
//	// After the current input event has fully dispatched:
//	c.FlushPending()
//
// # Architecture
//
// The module is organized into:
//   - sketch (root): geometry, colors, the paint attribute union, and the
//     Item interface with its concrete kinds
//   - store: the ID registry with deferred deletion and undo snapshots
//   - layer: ordered layer groups and Z-order assignment
//   - history: reversible actions and the undo/redo stacks
//   - editor: the mutation facade tying the above together
//   - project: JSON project save/load
//
// # Deletion Model
//
// Items referenced from layers, undo actions or in-flight tools are never
// destroyed synchronously. Removing an item only takes its ID out of the
// live index; the memory is reclaimed when the host calls
// editor.Controller.FlushPending from a point in its control flow known to
// be free of outstanding references - typically once the current input
// event has fully dispatched. Until a removal is flushed (or when it was
// made with undo retention) it can be reversed.
//
// # Threading
//
// The scene model is single-threaded by design: all mutation happens on
// the host's event-loop goroutine. Only SetLogger is safe to call from
// anywhere.
package sketch
