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
// COMMAND FLAGS
// =============================================================================

var (
	queryReverse bool
)

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

// queryCmd prints dependency paths for build targets.
var queryCmd = &cobra.Command{
	Use:   "query TARGET...",
	Short: "Print the dependencies recorded for each target",
	Long: `Print dependency paths for each target, one per line.

The default direction is forward: the inputs the target depended on at
its most recent build. With --reverse the direction flips: every target
whose deps record ever named the file, in log order, including targets
whose current record no longer does.

Targets the log has never seen produce no output and no error.

Examples:
  ninjadeps query obj/foo.o
  ninjadeps query -r src/foo.h
  ninjadeps query -f build/.ninja_deps obj/a.o obj/b.o
  ninjadeps query obj/foo.o --json`,
	Args: cobra.MinimumNArgs(1),
	Run:  runQuery,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	queryCmd.Flags().BoolVarP(&queryReverse, "reverse", "r", false,
		"List what has depended on the target instead of what it depends on")
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

// runQuery executes the dependency query.
func runQuery(cmd *cobra.Command, args []string) {
	file := resolveDepsFile()

	idx, err := loadIndex(file)
	if err != nil {
		outputError("Failed to load deps log", err)
		os.Exit(depslog.ExitError)
	}

	direction := depslog.DirectionForward
	if queryReverse {
		direction = depslog.DirectionReverse
	}

	result, err := depslog.BuildQueryResult(idx, direction, file, args)
	if err != nil {
		outputError("Query failed", err)
		os.Exit(depslog.ExitError)
	}

	// Unknown targets are skipped, not failed. The log only knows paths
	// that have appeared in a build, so asking about anything else is
	// routine.
	for _, target := range result.Skipped {
		logger.Debug("target not in deps log, skipping", "target", target)
	}

	if jsonOutput {
		if err := outputJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			os.Exit(depslog.ExitError)
		}
		os.Exit(depslog.ExitSuccess)
	}

	outputQueryText(result)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// outputQueryText prints neighbor paths one per line in input-target
// order, with no separators between targets, so the output pipes
// cleanly into sort or xargs.
func outputQueryText(result *depslog.QueryResult) {
	for _, r := range result.Results {
		for _, dep := range r.Deps {
			fmt.Println(dep)
		}
	}
}
