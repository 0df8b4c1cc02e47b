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

// API version for JSON output.
const APIVersion = "1.0"

// Direction selects which edge set a query walks.
type Direction string

const (
	// DirectionForward answers "what does this node depend on".
	DirectionForward Direction = "forward"

	// DirectionReverse answers "what depends on this node".
	DirectionReverse Direction = "reverse"
)

// QueryResult is the envelope for query output.
type QueryResult struct {
	APIVersion string       `json:"api_version"`
	Direction  Direction    `json:"direction"`
	File       string       `json:"file"`
	Results    []TargetDeps `json:"results"`

	// Skipped lists targets the log never interned. Text output stays
	// silent about them; the envelope surfaces them for tooling.
	Skipped []string `json:"skipped,omitempty"`
}

// TargetDeps holds one resolved target's neighbor list.
type TargetDeps struct {
	Target string   `json:"target"`
	ID     NodeID   `json:"id"`
	MTime  uint32   `json:"mtime,omitempty"` // forward queries only
	Deps   []string `json:"deps"`
}

// NewQueryResult creates an empty result envelope.
func NewQueryResult(direction Direction, file string) *QueryResult {
	return &QueryResult{
		APIVersion: APIVersion,
		Direction:  direction,
		File:       file,
		Results:    []TargetDeps{},
	}
}

// BuildQueryResult answers a batch of targets against the index.
//
// # Description
//
// Each target is resolved by exact path. Resolved targets contribute one
// TargetDeps in input order; unknown targets land in Skipped and are not an
// error. A resolved target without neighbors contributes an empty Deps list.
//
// # Inputs
//
//   - idx: Loaded index.
//   - direction: DirectionForward or DirectionReverse.
//   - file: Log path, echoed into the envelope.
//   - targets: Node paths to look up.
//
// # Outputs
//
//   - *QueryResult: Envelope with results and skips.
//   - error: Only on index corruption (an id with no interned path).
func BuildQueryResult(idx *Index, direction Direction, file string, targets []string) (*QueryResult, error) {
	result := NewQueryResult(direction, file)
	for _, target := range targets {
		id, ok := idx.Resolve(target)
		if !ok {
			result.Skipped = append(result.Skipped, target)
			continue
		}

		var ids []NodeID
		var mtime uint32
		if direction == DirectionReverse {
			ids = idx.ReverseDeps(id)
		} else {
			if entry, ok := idx.Entry(id); ok {
				mtime = entry.MTime
			}
			ids = idx.ForwardDeps(id)
		}

		paths, err := idx.PathsOf(ids)
		if err != nil {
			return nil, err
		}
		result.Results = append(result.Results, TargetDeps{
			Target: target,
			ID:     id,
			MTime:  mtime,
			Deps:   paths,
		})
	}
	return result, nil
}

// DumpResult is the envelope for dump output.
type DumpResult struct {
	APIVersion string      `json:"api_version"`
	File       string      `json:"file"`
	Version    uint32      `json:"version"`
	Nodes      int         `json:"nodes"`
	Entries    []DumpEntry `json:"entries"`
}

// DumpEntry is one owner's current forward deps.
type DumpEntry struct {
	Path  string   `json:"path"`
	ID    NodeID   `json:"id"`
	MTime uint32   `json:"mtime"`
	Deps  []string `json:"deps"`
}

// NewDumpResult captures every forward entry, ascending by owner id.
func NewDumpResult(idx *Index, file string) (*DumpResult, error) {
	result := &DumpResult{
		APIVersion: APIVersion,
		File:       file,
		Version:    idx.Version(),
		Nodes:      idx.NodeCount(),
		Entries:    []DumpEntry{},
	}
	for _, id := range idx.Owners() {
		path, err := idx.Path(id)
		if err != nil {
			return nil, err
		}
		entry, _ := idx.Entry(id)
		deps, err := idx.PathsOf(entry.Deps)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, DumpEntry{
			Path:  path,
			ID:    id,
			MTime: entry.MTime,
			Deps:  deps,
		})
	}
	return result, nil
}

// StatsResult is the envelope for stats output.
type StatsResult struct {
	APIVersion  string `json:"api_version"`
	File        string `json:"file"`
	SizeBytes   int64  `json:"size_bytes"`
	Version     uint32 `json:"version"`
	Nodes       int    `json:"nodes"`
	DepsRecords int    `json:"deps_records"`
	Owners      int    `json:"owners"`
	Edges       int    `json:"edges"`
	ReverseRefs int    `json:"reverse_refs"`
	LatestMTime uint32 `json:"latest_mtime"`
}

// NewStatsResult summarizes the index. size is the log's on-disk byte count,
// -1 when unknown.
func NewStatsResult(idx *Index, file string, size int64) *StatsResult {
	return &StatsResult{
		APIVersion:  APIVersion,
		File:        file,
		SizeBytes:   size,
		Version:     idx.Version(),
		Nodes:       idx.NodeCount(),
		DepsRecords: idx.DepsRecordCount(),
		Owners:      idx.OwnerCount(),
		Edges:       idx.EdgeCount(),
		ReverseRefs: idx.ReverseRefCount(),
		LatestMTime: idx.LatestMTime(),
	}
}
