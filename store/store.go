// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package store owns the authoritative mapping from stable item IDs to
// items, with deferred deletion and undo-oriented snapshotting.
//
// Every item lives in exactly one of three disjoint partitions:
//
//   - live: resolvable and usable.
//   - snapshot: removed from the scene but retained because an undo of the
//     deletion is still possible.
//   - pending: removed from the scene and queued for irreversible
//     destruction at the next FlushDeletions.
//
// Deletion is deliberately deferred: ScheduleDelete only moves an item out
// of the live index, so callers higher on the current call stack that still
// hold a reference cannot be left dangling. The host drains the pending
// queue from a point in its own control flow known to be reference-free
// (typically after the current input event has fully dispatched).
package store

import (
	"sort"

	"github.com/gogpu/sketch"
)

// Store owns the live / snapshot / pending partitions of the item set.
//
// Store is not safe for concurrent use. Like the rest of the scene model
// it expects a single goroutine, typically the event loop.
type Store struct {
	live     map[ItemID]sketch.Item
	snapshot map[ItemID]sketch.Item
	pending  map[ItemID]sketch.Item

	// byItem indexes every known item back to its ID, across all three
	// partitions, so Register stays idempotent and legacy pointer-based
	// call sites can migrate via ReverseResolve.
	byItem map[sketch.Item]ItemID

	obs Observers
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		live:     make(map[ItemID]sketch.Item),
		snapshot: make(map[ItemID]sketch.Item),
		pending:  make(map[ItemID]sketch.Item),
		byItem:   make(map[sketch.Item]ItemID),
	}
}

// SetObservers installs lifecycle callbacks. Passing the zero Observers
// removes all callbacks.
func (s *Store) SetObservers(obs Observers) {
	s.obs = obs
}

// Register adds an item to the live set and returns its ID.
// Registering an item that is already known is idempotent: the existing ID
// is returned and no state changes. A nil item returns NilID.
func (s *Store) Register(item sketch.Item) ItemID {
	if item == nil {
		return NilID
	}
	if id, ok := s.byItem[item]; ok {
		return id
	}
	id := NewItemID()
	s.live[id] = item
	s.byItem[item] = id
	sketch.Logger().Debug("store: item registered",
		"id", id.String(), "kind", item.Kind().String())
	if s.obs.ItemRegistered != nil {
		s.obs.ItemRegistered(id, item)
	}
	return id
}

// Resolve returns the live item for id, or nil if the ID is nil, unknown,
// snapshotted or pending deletion.
func (s *Store) Resolve(id ItemID) sketch.Item {
	if id.IsNil() {
		return nil
	}
	return s.live[id]
}

// ReverseResolve returns the ID of a live item. It reports false for nil
// items, unknown items, and items that are no longer live.
func (s *Store) ReverseResolve(item sketch.Item) (ItemID, bool) {
	if item == nil {
		return NilID, false
	}
	id, ok := s.byItem[item]
	if !ok {
		return NilID, false
	}
	if _, live := s.live[id]; !live {
		return NilID, false
	}
	return id, true
}

// ScheduleDelete removes id from the live set and queues its item for
// destruction. With keepSnapshot the item moves to the snapshot set instead
// and can come back via Restore; otherwise it moves to the pending queue
// and is destroyed by the next FlushDeletions.
//
// The ItemAboutToBeDeleted observer fires before the ID leaves the live
// index. Scheduling a non-live ID (including a second schedule of the same
// ID) is a no-op returning false.
func (s *Store) ScheduleDelete(id ItemID, keepSnapshot bool) bool {
	item, ok := s.live[id]
	if !ok {
		return false
	}
	if s.obs.ItemAboutToBeDeleted != nil {
		s.obs.ItemAboutToBeDeleted(id, item)
	}
	delete(s.live, id)
	if keepSnapshot {
		s.snapshot[id] = item
	} else {
		s.pending[id] = item
	}
	sketch.Logger().Debug("store: delete scheduled",
		"id", id.String(), "snapshot", keepSnapshot)
	return true
}

// Restore moves id from the snapshot set back to the live set,
// re-associating it with its original item. It returns false if the ID is
// not snapshotted - in particular, once the item has been flushed,
// restoration is impossible and fails cleanly.
func (s *Store) Restore(id ItemID) bool {
	item, ok := s.snapshot[id]
	if !ok {
		return false
	}
	delete(s.snapshot, id)
	s.live[id] = item
	sketch.Logger().Debug("store: item restored", "id", id.String())
	if s.obs.ItemRestored != nil {
		s.obs.ItemRestored(id, item)
	}
	return true
}

// FlushDeletions irreversibly destroys every item in the pending queue and
// empties it, returning the number of items destroyed. IDs destroyed here
// are retired permanently.
//
// Callers must invoke this only when no component holds a raw reference to
// a pending item for the current call stack.
func (s *Store) FlushDeletions() int {
	n := len(s.pending)
	for id, item := range s.pending {
		delete(s.byItem, item)
		delete(s.pending, id)
	}
	if n > 0 {
		sketch.Logger().Debug("store: deletions flushed", "count", n)
	}
	return n
}

// Clear schedules deletion of every live item and folds any snapshot
// entries into the pending queue. Nothing is destroyed until the next
// FlushDeletions. Used when loading a project over an existing one.
func (s *Store) Clear() {
	for _, id := range s.LiveIDs() {
		s.ScheduleDelete(id, false)
	}
	for id, item := range s.snapshot {
		delete(s.snapshot, id)
		s.pending[id] = item
	}
	sketch.Logger().Info("store: cleared", "pending", len(s.pending))
}

// LiveCount returns the number of live items.
func (s *Store) LiveCount() int { return len(s.live) }

// SnapshotCount returns the number of snapshotted items.
func (s *Store) SnapshotCount() int { return len(s.snapshot) }

// PendingCount returns the number of items queued for destruction.
func (s *Store) PendingCount() int { return len(s.pending) }

// LiveIDs returns the live IDs sorted bytewise for deterministic output.
func (s *Store) LiveIDs() []ItemID {
	ids := make([]ItemID, 0, len(s.live))
	for id := range s.live {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}
