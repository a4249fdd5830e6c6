// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layer partitions the live item set into ordered, independently
// visible, lockable, opacity-scaled groups and derives the paint (Z-)
// order from the group order.
//
// Layers reference items only by ID, never by pointer: membership cannot
// dangle. An ID whose backing item has been destroyed is dropped lazily on
// the next cascade pass rather than synchronously on deletion.
package layer

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/store"
)

// Kind tags a layer's content type. It is informational only; the scene
// model treats all kinds the same.
type Kind uint8

const (
	// KindVector holds vector items (strokes, shapes, text).
	KindVector Kind = iota
	// KindRaster holds placed raster images.
	KindRaster
	// KindMixed holds both.
	KindMixed
)

// String returns a human-readable name for the layer kind.
func (k Kind) String() string {
	switch k {
	case KindVector:
		return "Vector"
	case KindRaster:
		return "Raster"
	case KindMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// Layer is an ordered group of item IDs with shared render state.
// An ID belongs to at most one layer at a time; the Manager enforces that,
// the Store knows nothing about layers.
type Layer struct {
	store *store.Store

	name    string
	kind    Kind
	visible bool
	locked  bool
	opacity float64

	items []store.ItemID

	// zBase is the ordering key assigned to members, maintained by the
	// Manager on every structural change.
	zBase int
}

// NewLayer creates an empty, visible, unlocked layer with opacity 1.
func NewLayer(s *store.Store, name string, kind Kind) *Layer {
	return &Layer{
		store:   s,
		name:    name,
		kind:    kind,
		visible: true,
		opacity: 1.0,
	}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// SetName renames the layer.
func (l *Layer) SetName(name string) { l.name = name }

// Kind returns the layer's content tag.
func (l *Layer) Kind() Kind { return l.kind }

// Visible reports whether the layer is painted.
func (l *Layer) Visible() bool { return l.visible }

// Locked reports whether the layer refuses edits. Lock state is advisory:
// tools consult it, the scene model does not enforce it.
func (l *Layer) Locked() bool { return l.locked }

// SetLocked sets the advisory lock flag.
func (l *Layer) SetLocked(locked bool) { l.locked = locked }

// Opacity returns the layer opacity in [0, 1].
func (l *Layer) Opacity() float64 { return l.opacity }

// SetVisible sets layer visibility and cascades the flag to every member
// item immediately.
func (l *Layer) SetVisible(visible bool) {
	l.visible = visible
	l.cascade()
}

// SetOpacity sets the layer opacity, clamped to [0, 1], and cascades it to
// every member item immediately.
func (l *Layer) SetOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	l.opacity = opacity
	l.cascade()
}

// AddItem appends id to the layer and applies the layer's render state to
// the item. Nil and duplicate IDs are ignored.
func (l *Layer) AddItem(id store.ItemID) {
	if id.IsNil() || l.ContainsItem(id) {
		return
	}
	l.items = append(l.items, id)
	if item := l.store.Resolve(id); item != nil {
		l.apply(item)
	}
}

// RemoveItem removes id from the layer. It reports whether the ID was a
// member.
func (l *Layer) RemoveItem(id store.ItemID) bool {
	for i, member := range l.items {
		if member == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// ContainsItem reports whether id is a member of the layer.
func (l *Layer) ContainsItem(id store.ItemID) bool {
	for _, member := range l.items {
		if member == id {
			return true
		}
	}
	return false
}

// Clear removes all members. The items themselves are untouched.
func (l *Layer) Clear() {
	l.items = l.items[:0]
}

// ItemIDs returns a copy of the membership list in layer order.
func (l *Layer) ItemIDs() []store.ItemID {
	out := make([]store.ItemID, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of member IDs, including any whose item has
// vanished but has not yet been swept by a cascade pass.
func (l *Layer) Len() int { return len(l.items) }

// apply writes the layer's render state onto one item.
func (l *Layer) apply(item sketch.Item) {
	item.SetVisible(l.visible)
	item.SetOpacity(l.opacity)
	item.SetZOrder(l.zBase)
}

// cascade re-applies render state to every member, dropping IDs whose
// backing item has vanished. This is the lazy cleanup pass: deletion never
// touches layer membership synchronously.
func (l *Layer) cascade() {
	kept := l.items[:0]
	for _, id := range l.items {
		item := l.store.Resolve(id)
		if item == nil {
			continue
		}
		l.apply(item)
		kept = append(kept, id)
	}
	l.items = kept
}

// setZBase records the ordering key for this layer and cascades it.
func (l *Layer) setZBase(z int) {
	l.zBase = z
	l.cascade()
}
