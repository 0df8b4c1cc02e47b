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
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load reads the deps log at path and builds its in-memory index.
//
// # Description
//
// Opens the file, validates the header, replays every record, and returns the
// resulting index. Loading is all-or-nothing: any truncated or malformed
// record fails the whole call and no partial index is returned.
//
// # Inputs
//
//   - path: Filesystem path to a deps log (conventionally DefaultFile).
//
// # Outputs
//
//   - *Index: Fully built index, immutable from here on.
//   - error: Open failure, *FormatError, *TruncatedError,
//     *MalformedRecordError, or *UnknownNodeError.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deps log: %w", err)
	}
	defer f.Close()

	idx, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}

// Read decodes a deps log from r and builds its in-memory index.
//
// # Description
//
// Same contract as Load, over an arbitrary stream. The stream is consumed
// exactly once, front to back; a clean EOF is only legal on a record
// boundary.
//
// # Inputs
//
//   - r: Byte stream positioned at the magic.
//
// # Outputs
//
//   - *Index: Fully built index.
//   - error: *FormatError, *TruncatedError, *MalformedRecordError, or
//     *UnknownNodeError.
func Read(r io.Reader) (*Index, error) {
	dec := &decoder{r: bufio.NewReader(r)}
	if err := dec.header(); err != nil {
		return nil, err
	}

	idx := newIndex(dec.version)
	for {
		rec, off, err := dec.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch rec := rec.(type) {
		case PathRecord:
			idx.addPath(rec)
		case DepsRecord:
			if err := idx.addDeps(rec, off); err != nil {
				return nil, err
			}
		}
	}
	return idx, nil
}

// decoder walks the wire stream. It tracks the byte offset so every error can
// name the position it happened at.
type decoder struct {
	r       *bufio.Reader
	off     int64
	version uint32
}

// header consumes the magic and the version word.
func (d *decoder) header() error {
	var magic [len(Magic)]byte
	n, err := io.ReadFull(d.r, magic[:])
	d.off += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &FormatError{Got: string(magic[:n])}
		}
		return fmt.Errorf("read magic: %w", err)
	}
	if string(magic[:]) != Magic {
		return &FormatError{Got: string(magic[:])}
	}

	v, err := d.word("version")
	if err != nil {
		return err
	}
	d.version = v
	return nil
}

// word reads one 4-byte little-endian unsigned integer. A short read is a
// truncation, never a clean end.
func (d *decoder) word(what string) (uint32, error) {
	var b [wordSize]byte
	n, err := io.ReadFull(d.r, b[:])
	d.off += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, &TruncatedError{Offset: d.off, What: what}
		}
		return 0, fmt.Errorf("read %s: %w", what, err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// next decodes the next record and returns it with the offset of its size
// word. io.EOF signals a clean end of the stream; EOF anywhere inside a
// record surfaces as *TruncatedError.
func (d *decoder) next() (Record, int64, error) {
	start := d.off

	var b [wordSize]byte
	n, err := io.ReadFull(d.r, b[:])
	d.off += int64(n)
	if err == io.EOF {
		return nil, start, io.EOF
	}
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, start, &TruncatedError{Offset: d.off, What: "record size"}
		}
		return nil, start, fmt.Errorf("read record size: %w", err)
	}

	word := binary.LittleEndian.Uint32(b[:])
	size := int64(word & sizeMask)
	payload := make([]byte, size)
	n, err = io.ReadFull(d.r, payload)
	d.off += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, start, &TruncatedError{Offset: d.off, What: "record payload"}
		}
		return nil, start, fmt.Errorf("read record payload: %w", err)
	}

	if word&depsFlag != 0 {
		return d.depsRecord(payload, start)
	}
	return d.pathRecord(payload, start)
}

// pathRecord decodes a path-intern payload: path bytes, optional NUL padding,
// then a 4-byte checksum that is carried but not verified.
func (d *decoder) pathRecord(p []byte, start int64) (Record, int64, error) {
	if len(p) < checksumSize {
		return nil, start, &MalformedRecordError{
			Offset: start,
			Reason: fmt.Sprintf("path record payload is %d bytes, need at least %d", len(p), checksumSize),
		}
	}

	body := p[:len(p)-checksumSize]
	sum := binary.LittleEndian.Uint32(p[len(p)-checksumSize:])
	for len(body) > 0 && body[len(body)-1] == 0 {
		body = body[:len(body)-1]
	}
	if len(body) == 0 {
		return nil, start, &MalformedRecordError{
			Offset: start,
			Reason: "path record with empty path",
		}
	}
	return PathRecord{Path: string(body), Checksum: sum}, start, nil
}

// depsRecord decodes a dependency payload: owner id, mtime, then zero or more
// dep ids, all 4-byte words.
func (d *decoder) depsRecord(p []byte, start int64) (Record, int64, error) {
	if len(p) < 2*wordSize {
		return nil, start, &MalformedRecordError{
			Offset: start,
			Reason: fmt.Sprintf("deps record payload is %d bytes, need at least %d", len(p), 2*wordSize),
		}
	}
	if len(p)%wordSize != 0 {
		return nil, start, &MalformedRecordError{
			Offset: start,
			Reason: fmt.Sprintf("deps record payload is %d bytes, not a multiple of %d", len(p), wordSize),
		}
	}

	owner := NodeID(binary.LittleEndian.Uint32(p[0:wordSize]))
	mtime := binary.LittleEndian.Uint32(p[wordSize : 2*wordSize])
	deps := make([]NodeID, 0, (len(p)-2*wordSize)/wordSize)
	for i := 2 * wordSize; i < len(p); i += wordSize {
		deps = append(deps, NodeID(binary.LittleEndian.Uint32(p[i:i+wordSize])))
	}
	return DepsRecord{Owner: owner, MTime: mtime, Deps: deps}, start, nil
}
