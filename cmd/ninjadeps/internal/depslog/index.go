// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package depslog

import (
	"sort"
)

// Index is the replayed state of a deps log.
//
// # Description
//
// The node table assigns paths their dense ids in file order. Forward deps
// hold each owner's most recent dependency record (replace semantics).
// Reverse deps accumulate one owner reference per dependency record that
// mentioned the dep (append semantics, never rewritten). The asymmetry
// mirrors the log's replay rules and is intentional.
//
// # Thread Safety
//
// Immutable after Read returns. Safe for concurrent readers without locking.
type Index struct {
	version uint32

	// paths is the node table; a node's id is its position.
	paths []string

	// ids maps a path to its id. If the log interned the same path twice,
	// the newest id wins the map slot.
	ids map[string]NodeID

	// forward holds the current deps entry per owner.
	forward map[NodeID]*DepsEntry

	// reverse holds, per dep, every owner that ever recorded it, in file
	// order, duplicates across records preserved.
	reverse map[NodeID][]NodeID

	depsRecords int
	edges       int
	reverseRefs int
	latestMTime uint32
}

func newIndex(version uint32) *Index {
	return &Index{
		version: version,
		ids:     make(map[string]NodeID),
		forward: make(map[NodeID]*DepsEntry),
		reverse: make(map[NodeID][]NodeID),
	}
}

// addPath interns one path record, assigning the next dense id.
func (ix *Index) addPath(rec PathRecord) {
	id := NodeID(len(ix.paths))
	ix.paths = append(ix.paths, rec.Path)
	ix.ids[rec.Path] = id
}

// addDeps replays one dependency record.
//
// Every referenced id is validated against the node table before any state
// changes, so a bad record never leaves a half-applied index behind. The dep
// list is deduplicated preserving first occurrence, the owner's forward entry
// is replaced, and the owner is appended to each surviving dep's reverse
// list.
func (ix *Index) addDeps(rec DepsRecord, off int64) error {
	if err := ix.checkID(rec.Owner, off); err != nil {
		return err
	}
	for _, dep := range rec.Deps {
		if err := ix.checkID(dep, off); err != nil {
			return err
		}
	}

	deps := dedupe(rec.Deps)
	if prev, ok := ix.forward[rec.Owner]; ok {
		ix.edges -= len(prev.Deps)
	}
	ix.forward[rec.Owner] = &DepsEntry{MTime: rec.MTime, Deps: deps}
	ix.edges += len(deps)

	for _, dep := range deps {
		ix.reverse[dep] = append(ix.reverse[dep], rec.Owner)
	}
	ix.reverseRefs += len(deps)

	ix.depsRecords++
	if rec.MTime > ix.latestMTime {
		ix.latestMTime = rec.MTime
	}
	return nil
}

func (ix *Index) checkID(id NodeID, off int64) error {
	if id < 0 || int(id) >= len(ix.paths) {
		return &UnknownNodeError{ID: id, Nodes: len(ix.paths), Offset: off}
	}
	return nil
}

// dedupe removes duplicate ids preserving first-occurrence order. The input
// is not modified.
func dedupe(ids []NodeID) []NodeID {
	out := make([]NodeID, 0, len(ids))
	seen := make(map[NodeID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Resolve maps a node path to its id.
//
// # Outputs
//
//   - NodeID: The id, valid only when found is true.
//   - bool: Whether the path is interned in the log.
func (ix *Index) Resolve(path string) (NodeID, bool) {
	id, ok := ix.ids[path]
	return id, ok
}

// Path returns the path interned for id.
//
// # Outputs
//
//   - string: The node path.
//   - error: *UnknownNodeError when id is outside the node table.
func (ix *Index) Path(id NodeID) (string, error) {
	if id < 0 || int(id) >= len(ix.paths) {
		return "", &UnknownNodeError{ID: id, Nodes: len(ix.paths), Offset: -1}
	}
	return ix.paths[id], nil
}

// ForwardDeps returns the ids id currently depends on, in record order.
//
// Returns nil when id has no dependency record. The returned slice is shared
// index state; callers must not modify it.
func (ix *Index) ForwardDeps(id NodeID) []NodeID {
	entry, ok := ix.forward[id]
	if !ok {
		return nil
	}
	return entry.Deps
}

// ReverseDeps returns every owner that ever recorded a dependency on id, in
// file order. An owner appears once per record that mentioned id, so repeated
// recordings repeat the owner.
//
// Returns nil when nothing depends on id. The returned slice is shared index
// state; callers must not modify it.
func (ix *Index) ReverseDeps(id NodeID) []NodeID {
	return ix.reverse[id]
}

// PathsOf maps ids to their interned paths, preserving order.
//
// # Outputs
//
//   - []string: One path per input id.
//   - error: *UnknownNodeError on the first id outside the node table.
func (ix *Index) PathsOf(ids []NodeID) ([]string, error) {
	paths := make([]string, 0, len(ids))
	for _, id := range ids {
		path, err := ix.Path(id)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Entry returns id's current forward entry with its recorded mtime.
func (ix *Index) Entry(id NodeID) (DepsEntry, bool) {
	entry, ok := ix.forward[id]
	if !ok {
		return DepsEntry{}, false
	}
	return *entry, true
}

// Owners returns every node id holding a forward entry, ascending.
func (ix *Index) Owners() []NodeID {
	owners := make([]NodeID, 0, len(ix.forward))
	for id := range ix.forward {
		owners = append(owners, id)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
	return owners
}

// Version reports the version word recorded in the header. It is carried for
// display only; decoding does not branch on it.
func (ix *Index) Version() uint32 {
	return ix.version
}

// NodeCount reports the number of interned paths.
func (ix *Index) NodeCount() int {
	return len(ix.paths)
}

// DepsRecordCount reports dependency records replayed, superseded ones
// included.
func (ix *Index) DepsRecordCount() int {
	return ix.depsRecords
}

// OwnerCount reports nodes holding a current forward entry.
func (ix *Index) OwnerCount() int {
	return len(ix.forward)
}

// EdgeCount reports forward edges live after replay.
func (ix *Index) EdgeCount() int {
	return ix.edges
}

// ReverseRefCount reports reverse references accumulated across all records,
// superseded records included.
func (ix *Index) ReverseRefCount() int {
	return ix.reverseRefs
}

// LatestMTime reports the newest mtime seen in any dependency record.
func (ix *Index) LatestMTime() uint32 {
	return ix.latestMTime
}
