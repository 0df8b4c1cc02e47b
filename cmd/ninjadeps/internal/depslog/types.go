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

// Magic identifies a ninja deps log. The trailing newline is part of the
// on-disk bytes.
const Magic = "# ninjadeps\n"

// DefaultFile is the conventional deps log name in a build directory.
const DefaultFile = ".ninja_deps"

// Wire layout constants. All integers in the log are 4-byte little-endian.
const (
	wordSize     = 4
	checksumSize = 4

	// depsFlag is bit 31 of a record's size word: set means dependency
	// record, clear means path record. The low 31 bits hold the payload
	// length in bytes.
	depsFlag = 1 << 31
	sizeMask = depsFlag - 1
)

// NodeID is a dense positional node identifier. The first path record in the
// log defines id 0, the second id 1, and so on. IDs never come from record
// payloads alone; a valid id always indexes the interned node table.
type NodeID int32

// Record is one decoded log record. The wire stream is decoded into this
// two-variant union exactly once, at the read boundary; everything downstream
// switches on the concrete type instead of re-inspecting flag bits.
type Record interface {
	isRecord()
}

// PathRecord interns one node path. Its position in the record stream assigns
// the node's id.
type PathRecord struct {
	// Path is the node path with trailing NUL padding stripped.
	Path string

	// Checksum is the trailing 4 bytes of the payload. It is carried but
	// never validated.
	Checksum uint32
}

func (PathRecord) isRecord() {}

// DepsRecord binds an owner node to the nodes it depends on.
type DepsRecord struct {
	// Owner is the node whose dependencies this record declares.
	Owner NodeID

	// MTime is the recorded modification time (seconds).
	MTime uint32

	// Deps lists the dependency ids exactly as written, duplicates
	// included. Deduplication is an indexing rule, not a wire rule.
	Deps []NodeID
}

func (DepsRecord) isRecord() {}

// DepsEntry is the current forward-deps value for one owner: the payload of
// the owner's most recent dependency record, deps deduplicated preserving
// first occurrence.
type DepsEntry struct {
	// MTime is the mtime of the winning record.
	MTime uint32

	// Deps is the deduplicated dependency list in first-occurrence order.
	Deps []NodeID
}
