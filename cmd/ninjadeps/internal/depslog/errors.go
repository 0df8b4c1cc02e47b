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
	"errors"
	"fmt"
)

// Exit codes for ninjadeps commands.
const (
	ExitSuccess = 0 // Query successful (even if no results)
	ExitError   = 1 // Error (unreadable, truncated, or malformed log)
	ExitBadArgs = 2 // Invalid arguments
)

// Sentinel errors for deps log decoding.
var (
	// Header errors
	ErrBadMagic = errors.New("not a ninja deps log")

	// Record stream errors
	ErrTruncated       = errors.New("deps log truncated")
	ErrMalformedRecord = errors.New("malformed deps log record")

	// Node table errors
	ErrUnknownNode = errors.New("unknown node id")
)

// FormatError reports an input that does not begin with the deps log magic.
type FormatError struct {
	Got string // bytes actually found where the magic was expected
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("bad magic %q (want %q)", e.Got, Magic)
}

// Unwrap returns the sentinel error.
func (e *FormatError) Unwrap() error {
	return ErrBadMagic
}

// TruncatedError reports a log that ends mid-header or mid-record.
type TruncatedError struct {
	Offset int64  // byte offset where input ran out
	What   string // the piece being read when it did
}

// Error implements the error interface.
func (e *TruncatedError) Error() string {
	return fmt.Sprintf("deps log truncated at offset %d while reading %s", e.Offset, e.What)
}

// Unwrap returns the sentinel error.
func (e *TruncatedError) Unwrap() error {
	return ErrTruncated
}

// MalformedRecordError reports a record whose payload cannot be decoded.
type MalformedRecordError struct {
	Offset int64  // byte offset of the record's size word
	Reason string // what made the payload undecodable
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at offset %d: %s", e.Offset, e.Reason)
}

// Unwrap returns the sentinel error.
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// UnknownNodeError reports a node id outside the interned node table.
//
// During decoding this means a dependency record referenced an id no path
// record has defined yet; the load aborts rather than index a dangling edge.
type UnknownNodeError struct {
	ID     NodeID
	Nodes  int   // size of the node table at the time of the lookup
	Offset int64 // offset of the offending record, -1 outside decoding
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("record at offset %d references node id %d, but only %d nodes are defined",
			e.Offset, e.ID, e.Nodes)
	}
	return fmt.Sprintf("node id %d out of range (%d nodes)", e.ID, e.Nodes)
}

// Unwrap returns the sentinel error.
func (e *UnknownNodeError) Unwrap() error {
	return ErrUnknownNode
}
