// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package depslog

import (
	"errors"
	"reflect"
	"testing"
)

func TestIndex_Resolve_DenseIDsInFileOrder(t *testing.T) {
	idx := newLog().path("a.o").path("b.o").path("src/c.cc").read(t)

	for i, path := range []string{"a.o", "b.o", "src/c.cc"} {
		id, ok := idx.Resolve(path)
		if !ok {
			t.Fatalf("Resolve(%q) not found", path)
		}
		if id != NodeID(i) {
			t.Errorf("Resolve(%q) = %d, want %d", path, id, i)
		}
	}
	if idx.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", idx.NodeCount())
	}
}

func TestIndex_Resolve_UnknownPath(t *testing.T) {
	idx := newLog().path("a.o").read(t)

	if id, ok := idx.Resolve("missing.o"); ok {
		t.Errorf("Resolve(missing.o) = %d, want not found", id)
	}
}

func TestIndex_Resolve_ReinternedPathYieldsNewestID(t *testing.T) {
	// The same path interned twice occupies two id slots; lookups by name
	// land on the newest one, as in ninja's own loader.
	idx := newLog().path("a.o").path("a.o").read(t)

	if idx.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2", idx.NodeCount())
	}
	if id, _ := idx.Resolve("a.o"); id != 1 {
		t.Errorf("Resolve(a.o) = %d, want 1", id)
	}
}

func TestIndex_Path_RoundTrip(t *testing.T) {
	idx := newLog().path("a.o").path("b.o").read(t)

	got, err := idx.Path(1)
	if err != nil {
		t.Fatalf("Path(1) error = %v", err)
	}
	if got != "b.o" {
		t.Errorf("Path(1) = %q, want %q", got, "b.o")
	}
}

func TestIndex_Path_OutOfRange(t *testing.T) {
	idx := newLog().path("a.o").read(t)

	tests := []NodeID{-1, 1, 99}
	for _, id := range tests {
		if _, err := idx.Path(id); !errors.Is(err, ErrUnknownNode) {
			t.Errorf("Path(%d) error = %v, want ErrUnknownNode", id, err)
		}
	}
}

func TestIndex_ForwardDeps_LastRecordWins(t *testing.T) {
	idx := newLog().
		path("out.o").path("one.h").path("two.h").path("three.h").
		deps(0, 100, 1, 2).
		deps(0, 200, 3).
		read(t)

	if got := idx.ForwardDeps(0); !reflect.DeepEqual(got, []NodeID{3}) {
		t.Errorf("ForwardDeps(0) = %v, want [3] (later record replaces)", got)
	}
	entry, _ := idx.Entry(0)
	if entry.MTime != 200 {
		t.Errorf("Entry(0).MTime = %d, want 200 (from the winning record)", entry.MTime)
	}
	if idx.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1 after replacement", idx.EdgeCount())
	}
}

func TestIndex_ForwardDeps_NoEntry(t *testing.T) {
	idx := newLog().path("a.o").read(t)

	if got := idx.ForwardDeps(0); got != nil {
		t.Errorf("ForwardDeps(0) = %v, want nil", got)
	}
}

func TestIndex_ForwardDeps_DedupePreservesFirstOccurrence(t *testing.T) {
	idx := newLog().
		path("a.o").path("b.o").
		deps(1, 100, 0, 0, 0).
		read(t)

	if got := idx.ForwardDeps(1); !reflect.DeepEqual(got, []NodeID{0}) {
		t.Errorf("ForwardDeps(1) = %v, want [0]", got)
	}
}

func TestIndex_ForwardDeps_DedupeKeepsOrder(t *testing.T) {
	idx := newLog().
		path("out.o").path("h1").path("h2").path("h3").
		deps(0, 100, 2, 1, 2, 3, 1).
		read(t)

	if got := idx.ForwardDeps(0); !reflect.DeepEqual(got, []NodeID{2, 1, 3}) {
		t.Errorf("ForwardDeps(0) = %v, want [2 1 3]", got)
	}
}

func TestIndex_ReverseDeps_RecordOrder(t *testing.T) {
	// X and Y both depend on Z; X's record comes first.
	idx := newLog().
		path("z.h").path("x.o").path("y.o").
		deps(1, 100, 0).
		deps(2, 200, 0).
		read(t)

	if got := idx.ReverseDeps(0); !reflect.DeepEqual(got, []NodeID{1, 2}) {
		t.Errorf("ReverseDeps(z.h) = %v, want [1 2] in record order", got)
	}
}

func TestIndex_ReverseDeps_AccumulatesAcrossRecords(t *testing.T) {
	// The same owner re-records the same dep: forward collapses to one
	// entry, reverse keeps both mentions. The asymmetry is the contract.
	idx := newLog().
		path("d.h").path("x.o").
		deps(1, 100, 0).
		deps(1, 200, 0).
		read(t)

	if got := idx.ReverseDeps(0); !reflect.DeepEqual(got, []NodeID{1, 1}) {
		t.Errorf("ReverseDeps(d.h) = %v, want [1 1]", got)
	}
	if got := idx.ForwardDeps(1); !reflect.DeepEqual(got, []NodeID{0}) {
		t.Errorf("ForwardDeps(x.o) = %v, want [0]", got)
	}
}

func TestIndex_ReverseDeps_WithinRecordDedupedOnce(t *testing.T) {
	idx := newLog().
		path("d.h").path("x.o").
		deps(1, 100, 0, 0, 0).
		read(t)

	if got := idx.ReverseDeps(0); !reflect.DeepEqual(got, []NodeID{1}) {
		t.Errorf("ReverseDeps(d.h) = %v, want [1] (dedupe before reverse append)", got)
	}
}

func TestIndex_ReverseDeps_NoReferences(t *testing.T) {
	idx := newLog().path("a.o").read(t)

	if got := idx.ReverseDeps(0); got != nil {
		t.Errorf("ReverseDeps(0) = %v, want nil", got)
	}
}

func TestIndex_Owners_SortedAscending(t *testing.T) {
	idx := newLog().
		path("n0").path("n1").path("n2").path("n3").
		deps(3, 1).
		deps(0, 1).
		deps(2, 1).
		read(t)

	if got := idx.Owners(); !reflect.DeepEqual(got, []NodeID{0, 2, 3}) {
		t.Errorf("Owners() = %v, want [0 2 3]", got)
	}
}

func TestIndex_Counters(t *testing.T) {
	idx := newLog().
		path("a.o").path("b.o").path("c.h").
		deps(0, 50, 2).
		deps(1, 80, 2, 0).
		deps(0, 120, 1, 2).
		read(t)

	if got := idx.DepsRecordCount(); got != 3 {
		t.Errorf("DepsRecordCount() = %d, want 3", got)
	}
	if got := idx.OwnerCount(); got != 2 {
		t.Errorf("OwnerCount() = %d, want 2", got)
	}
	// Live edges: a.o -> {b.o c.h}, b.o -> {c.h a.o}.
	if got := idx.EdgeCount(); got != 4 {
		t.Errorf("EdgeCount() = %d, want 4", got)
	}
	// Every record contributed its deduped deps, replaced or not.
	if got := idx.ReverseRefCount(); got != 5 {
		t.Errorf("ReverseRefCount() = %d, want 5", got)
	}
	if got := idx.LatestMTime(); got != 120 {
		t.Errorf("LatestMTime() = %d, want 120", got)
	}
}

func TestIndex_SharedState_ConcurrentReaders(t *testing.T) {
	idx := newLog().
		path("a.o").path("b.o").
		deps(1, 100, 0).
		read(t)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				idx.ForwardDeps(1)
				idx.ReverseDeps(0)
				idx.Resolve("a.o")
				idx.Owners()
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
