// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package store

import "github.com/gogpu/sketch"

// Ref is a non-owning, lazily-resolved view of an ItemID in a Store.
// Holding a Ref never extends the item's lifetime and never blocks a flush.
//
// Ref is the sanctioned way for long-lived objects (layers, undo actions,
// in-progress tools) to refer to an item that might be deleted out from
// under them: each Get resolves through the Store, so a Ref to a deleted
// item simply yields nil instead of dangling.
type Ref struct {
	store *Store
	id    ItemID
}

// NewRef creates a Ref to id in s.
func NewRef(s *Store, id ItemID) Ref {
	return Ref{store: s, id: id}
}

// ID returns the referenced ID. The ID is stable even after the item is
// deleted.
func (r Ref) ID() ItemID {
	return r.id
}

// Get resolves the reference. It returns nil when the item is not live -
// deleted, snapshotted, pending, or never registered.
func (r Ref) Get() sketch.Item {
	if r.store == nil {
		return nil
	}
	return r.store.Resolve(r.id)
}

// Valid reports whether the reference currently resolves to a live item.
func (r Ref) Valid() bool {
	return r.Get() != nil
}
