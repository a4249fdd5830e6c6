// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package store

import (
	"bytes"

	"github.com/google/uuid"
)

// ItemID is a stable, copyable identifier for an item, independent of the
// item's memory location. IDs are minted only by Store.Register and stay
// valid until the backing item is destroyed by Store.FlushDeletions.
//
// ItemID is a 128-bit random UUID under the hood: comparable (usable as a
// map key), totally ordered via Compare, and never reused.
type ItemID uuid.UUID

// NilID is the zero ItemID. It never identifies an item.
var NilID ItemID

// NewItemID mints a fresh random ItemID.
func NewItemID() ItemID {
	return ItemID(uuid.New())
}

// IsNil reports whether the ID is the zero value.
func (id ItemID) IsNil() bool {
	return id == NilID
}

// Compare returns -1, 0 or 1 comparing the IDs bytewise.
// It gives IDs a total order for deterministic iteration.
func (id ItemID) Compare(other ItemID) int {
	return bytes.Compare(id[:], other[:])
}

// Less reports whether id orders before other.
func (id ItemID) Less(other ItemID) bool {
	return id.Compare(other) < 0
}

// String returns the canonical UUID form of the ID.
func (id ItemID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ItemID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ItemID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}
