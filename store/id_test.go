// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package store

import "testing"

func TestNilID(t *testing.T) {
	if !NilID.IsNil() {
		t.Error("NilID.IsNil() = false, want true")
	}
	if NewItemID().IsNil() {
		t.Error("NewItemID().IsNil() = true, want false")
	}
}

func TestIDCompare(t *testing.T) {
	a := NewItemID()
	if got := a.Compare(a); got != 0 {
		t.Errorf("a.Compare(a) = %d, want 0", got)
	}
	b := NewItemID()
	if a.Compare(b) == 0 {
		t.Error("distinct IDs compare equal")
	}
	if a.Less(b) == b.Less(a) {
		t.Error("Less is not antisymmetric for distinct IDs")
	}
	if !NilID.Less(a) {
		t.Error("NilID should order before any minted ID")
	}
}

func TestIDTextRoundTrip(t *testing.T) {
	a := NewItemID()
	text, err := a.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	var b ItemID
	if err := b.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) error: %v", text, err)
	}
	if a != b {
		t.Errorf("round trip changed ID: %s != %s", a, b)
	}
	if a.String() != string(text) {
		t.Errorf("String() = %q, MarshalText = %q", a.String(), text)
	}
}
