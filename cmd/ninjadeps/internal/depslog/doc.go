// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package depslog decodes ninja's binary dependency log (.ninja_deps) and
// builds an in-memory index answering forward and reverse dependency queries.
//
// The log is append-only: a 12-byte magic plus a 4-byte version, followed by
// size-prefixed records. Bit 31 of each record's size word selects the record
// kind (set = dependency record, clear = path record); the low 31 bits give
// the payload length. Path records intern node paths and receive dense ids in
// file order. Dependency records bind an owner id to its dep ids.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────────────────┐
//	│                        Deps Log Load Flow                                │
//	├─────────────────────────────────────────────────────────────────────────┤
//	│                                                                          │
//	│  ┌─────────────┐    ┌─────────────┐    ┌─────────────┐                  │
//	│  │ .ninja_deps │───▶│   Header    │───▶│   Record    │                  │
//	│  │   (bytes)   │    │   Reader    │    │   Decoder   │                  │
//	│  └─────────────┘    └─────────────┘    └─────────────┘                  │
//	│                                               │                          │
//	│                                               ▼                          │
//	│  ┌─────────────┐    ┌─────────────┐    ┌─────────────┐                  │
//	│  │  Queries    │◀───│   Index     │◀───│ PathRecord/ │                  │
//	│  │ (fwd/rev)   │    │ (maps+table)│    │ DepsRecord  │                  │
//	│  └─────────────┘    └─────────────┘    └─────────────┘                  │
//	│                                                                          │
//	└─────────────────────────────────────────────────────────────────────────┘
//
// Replay semantics follow ninja: a later dependency record for the same owner
// replaces the owner's forward deps, while reverse deps accumulate across all
// records. Both behaviors are load-bearing and must not be "normalized".
//
// Decoding is strict. Any truncated or malformed record aborts the whole load;
// a partial index is never returned.
//
// # Thread Safety
//
// An Index is immutable once Load returns and is safe for concurrent readers.
// Decoding itself is single-threaded.
package depslog
