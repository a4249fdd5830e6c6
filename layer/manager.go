// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/store"
)

// zStride is the ordering-key distance between adjacent layers. Every
// member of layer i (0-based, bottom to top) gets key i*zStride, so members
// of a higher layer always paint above members of a lower one.
const zStride = 100

// Manager owns the ordered layer list. The list order is the paint order:
// index 0 is the bottom layer, the last index is the top.
//
// Every structural operation keeps the active index valid and, where the
// operation moves layers around, re-points it at the same logical layer.
// Once at least one layer exists the Manager maintains the invariant that
// at least one layer always remains.
type Manager struct {
	store  *store.Store
	layers []*Layer
	active int

	// everCreated distinguishes the very first CreateLayer, which is the
	// only one that grabs the active index.
	everCreated bool

	// removeItem takes an item out of the scene when its layer is
	// deleted. The editor wires this to its own removal path so the
	// deletion is deferred and coalesced; without it the Manager falls
	// back to a direct non-undoable schedule on the store.
	removeItem func(store.ItemID)
}

// NewManager creates a Manager with no layers.
func NewManager(s *store.Store) *Manager {
	return &Manager{store: s}
}

// SetItemRemover installs the function used by DeleteLayer to move member
// items out of the scene.
func (m *Manager) SetItemRemover(remove func(store.ItemID)) {
	m.removeItem = remove
}

// LayerCount returns the number of layers.
func (m *Manager) LayerCount() int { return len(m.layers) }

// LayerAt returns the layer at index, or nil if index is out of range.
func (m *Manager) LayerAt(index int) *Layer {
	if index < 0 || index >= len(m.layers) {
		return nil
	}
	return m.layers[index]
}

// IndexOf returns the index of l, or -1 if l is not managed here.
func (m *Manager) IndexOf(l *Layer) int {
	for i, candidate := range m.layers {
		if candidate == l {
			return i
		}
	}
	return -1
}

// ActiveIndex returns the index of the active layer, or -1 when no layer
// exists yet.
func (m *Manager) ActiveIndex() int {
	if len(m.layers) == 0 {
		return -1
	}
	return m.active
}

// ActiveLayer returns the active layer, or nil when no layer exists yet.
func (m *Manager) ActiveLayer() *Layer {
	return m.LayerAt(m.ActiveIndex())
}

// SetActiveIndex sets the active layer index, clamped into range.
func (m *Manager) SetActiveIndex(index int) {
	if len(m.layers) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.layers) {
		index = len(m.layers) - 1
	}
	m.active = index
}

// CreateLayer appends a new layer on top and returns it. The new layer
// becomes active only if it is the first layer ever created.
func (m *Manager) CreateLayer(name string, kind Kind) *Layer {
	l := NewLayer(m.store, name, kind)
	m.layers = append(m.layers, l)
	if !m.everCreated {
		m.active = 0
		m.everCreated = true
	}
	m.recomputeZOrder()
	sketch.Logger().Debug("layer: created",
		"name", name, "kind", kind.String(), "index", len(m.layers)-1)
	return l
}

// DeleteLayer removes the layer at index after moving all its member items
// out of the scene. It refuses to delete the last remaining layer and
// refuses out-of-range indices, leaving state unchanged.
func (m *Manager) DeleteLayer(index int) bool {
	if index < 0 || index >= len(m.layers) {
		return false
	}
	if len(m.layers) <= 1 {
		sketch.Logger().Warn("layer: refused to delete last layer")
		return false
	}
	l := m.layers[index]
	for _, id := range l.ItemIDs() {
		if m.removeItem != nil {
			m.removeItem(id)
		} else {
			m.store.ScheduleDelete(id, false)
		}
	}
	l.Clear()
	m.layers = append(m.layers[:index], m.layers[index+1:]...)
	switch {
	case m.active > index:
		m.active--
	case m.active >= len(m.layers):
		m.active = len(m.layers) - 1
	}
	m.recomputeZOrder()
	sketch.Logger().Debug("layer: deleted", "name", l.Name(), "index", index)
	return true
}

// MoveLayerUp swaps the layer at index with the one above it (toward the
// front of the list). The active index follows its logical layer.
func (m *Manager) MoveLayerUp(index int) bool {
	if index < 1 || index >= len(m.layers) {
		return false
	}
	m.swap(index, index-1)
	return true
}

// MoveLayerDown swaps the layer at index with the one below it (toward the
// back of the list). The active index follows its logical layer.
func (m *Manager) MoveLayerDown(index int) bool {
	if index < 0 || index >= len(m.layers)-1 {
		return false
	}
	m.swap(index, index+1)
	return true
}

func (m *Manager) swap(i, j int) {
	m.layers[i], m.layers[j] = m.layers[j], m.layers[i]
	switch m.active {
	case i:
		m.active = j
	case j:
		m.active = i
	}
	m.recomputeZOrder()
}

// MergeDown moves every member of the layer at index into the layer below
// it, then drops the emptied layer. The member items stay in the scene.
func (m *Manager) MergeDown(index int) bool {
	if index < 1 || index >= len(m.layers) {
		return false
	}
	src := m.layers[index]
	dst := m.layers[index-1]
	for _, id := range src.ItemIDs() {
		dst.AddItem(id)
	}
	src.Clear()
	m.layers = append(m.layers[:index], m.layers[index+1:]...)
	switch {
	case m.active == index:
		m.active = index - 1
	case m.active > index:
		m.active--
	}
	m.recomputeZOrder()
	sketch.Logger().Debug("layer: merged down", "from", src.Name(), "into", dst.Name())
	return true
}

// FlattenAll moves every member into the bottom layer, destroys all other
// layers and renames the survivor "Flattened". It returns the surviving
// layer, or nil when no layer exists.
func (m *Manager) FlattenAll() *Layer {
	if len(m.layers) == 0 {
		return nil
	}
	bottom := m.layers[0]
	for _, l := range m.layers[1:] {
		for _, id := range l.ItemIDs() {
			bottom.AddItem(id)
		}
		l.Clear()
	}
	m.layers = m.layers[:1]
	m.active = 0
	bottom.SetName("Flattened")
	m.recomputeZOrder()
	sketch.Logger().Info("layer: flattened", "items", bottom.Len())
	return bottom
}

// DuplicateLayer appends a new layer copying the properties (name,
// visibility, lock, opacity, kind) of the layer at index. Member IDs are
// intentionally NOT copied: an item belongs to at most one layer, so the
// duplicate starts empty. Returns nil for an out-of-range index.
func (m *Manager) DuplicateLayer(index int) *Layer {
	src := m.LayerAt(index)
	if src == nil {
		return nil
	}
	dup := NewLayer(m.store, src.Name()+" copy", src.Kind())
	dup.visible = src.visible
	dup.locked = src.locked
	dup.opacity = src.opacity
	m.layers = append(m.layers, dup)
	m.recomputeZOrder()
	return dup
}

// Reset drops every layer without touching items. The next CreateLayer
// becomes active again, as if the Manager were fresh. Used on project load.
func (m *Manager) Reset() {
	m.layers = nil
	m.active = 0
	m.everCreated = false
}

// LayerOf returns the layer containing id, or nil if no layer claims it.
func (m *Manager) LayerOf(id store.ItemID) *Layer {
	for _, l := range m.layers {
		if l.ContainsItem(id) {
			return l
		}
	}
	return nil
}

// recomputeZOrder reassigns every layer's ordering key from its index.
// Called after every structural change so Z-order always mirrors the list.
func (m *Manager) recomputeZOrder() {
	for i, l := range m.layers {
		l.setZBase(i * zStride)
	}
}
