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
	"fmt"
	"io"
	"strings"
)

// Dump writes the whole index as deterministic text.
//
// # Description
//
// Header first: the magic (sans newline), the version, the node count, then a
// blank line. After that, one block per node holding a forward entry, in
// ascending id order: the node's path with a trailing colon, each dep path on
// its own four-space-indented line, and a closing blank line. Nodes that only
// ever appear as deps produce no block. Two loads of the same file always
// dump byte-identical output.
//
// # Inputs
//
//   - w: Destination stream.
//   - idx: Loaded index.
//
// # Outputs
//
//   - error: Write failure, or index corruption (an id with no path).
func Dump(w io.Writer, idx *Index) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.TrimSuffix(Magic, "\n"))
	fmt.Fprintf(bw, "version %d\n", idx.Version())
	fmt.Fprintf(bw, "nodes %d\n", idx.NodeCount())
	fmt.Fprintln(bw)

	for _, id := range idx.Owners() {
		path, err := idx.Path(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s:\n", path)
		for _, dep := range idx.ForwardDeps(id) {
			depPath, err := idx.Path(dep)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "    %s\n", depPath)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
