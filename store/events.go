// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package store

import "github.com/gogpu/sketch"

// Observers holds optional callbacks fired by the Store on lifecycle
// transitions. Nil fields are skipped. Callbacks run synchronously on the
// caller's goroutine and must not mutate the Store reentrantly.
type Observers struct {
	// ItemRegistered fires after an item is added to the live set.
	ItemRegistered func(id ItemID, item sketch.Item)

	// ItemAboutToBeDeleted fires when deletion is scheduled, before the
	// ID leaves the live index, so the item is still resolvable inside
	// the callback.
	ItemAboutToBeDeleted func(id ItemID, item sketch.Item)

	// ItemRestored fires after a snapshotted item returns to the live set.
	ItemRestored func(id ItemID, item sketch.Item)
}
