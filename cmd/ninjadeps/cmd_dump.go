// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"github.com/AleutianAI/ninjadeps/cmd/ninjadeps/internal/depslog"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

// dumpCmd prints the whole deps log.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every dependency entry in the log",
	Long: `Print the full deps log as text: a header with the log version and
node count, then one block per target that has a deps record, in
ascending node id order. Superseded records do not appear; each target
shows only its current dependency list.

The output is deterministic for a given log file, so it diffs cleanly
across builds.

Examples:
  ninjadeps dump
  ninjadeps dump -f build/.ninja_deps
  ninjadeps dump --json`,
	Args: cobra.NoArgs,
	Run:  runDump,
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

// runDump executes the full-log dump.
func runDump(cmd *cobra.Command, args []string) {
	file := resolveDepsFile()

	idx, err := loadIndex(file)
	if err != nil {
		outputError("Failed to load deps log", err)
		os.Exit(depslog.ExitError)
	}

	if jsonOutput {
		result, err := depslog.NewDumpResult(idx, file)
		if err != nil {
			outputError("Dump failed", err)
			os.Exit(depslog.ExitError)
		}
		if err := outputJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			os.Exit(depslog.ExitError)
		}
		os.Exit(depslog.ExitSuccess)
	}

	if err := depslog.Dump(os.Stdout, idx); err != nil {
		outputError("Dump failed", err)
		os.Exit(depslog.ExitError)
	}
}
