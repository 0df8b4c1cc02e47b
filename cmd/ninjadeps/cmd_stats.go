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

// statsCmd summarizes the deps log.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the deps log",
	Long: `Print summary counters for the deps log: file size, format version,
node count, deps record count (including superseded records), targets
with a current dependency list, edge counts, and the newest recorded
mtime.

A deps record count much higher than the target count means the log
carries a lot of dead history and ninja would shrink it on recompaction.

Examples:
  ninjadeps stats
  ninjadeps stats -f build/.ninja_deps --json`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

// runStats executes the summary.
func runStats(cmd *cobra.Command, args []string) {
	file := resolveDepsFile()

	idx, err := loadIndex(file)
	if err != nil {
		outputError("Failed to load deps log", err)
		os.Exit(depslog.ExitError)
	}

	var size int64 = -1
	if fi, statErr := os.Stat(file); statErr == nil {
		size = fi.Size()
	}

	result := depslog.NewStatsResult(idx, file, size)

	if jsonOutput {
		if err := outputJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			os.Exit(depslog.ExitError)
		}
		os.Exit(depslog.ExitSuccess)
	}

	outputStatsText(result)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// outputStatsText prints the summary as labeled lines.
func outputStatsText(result *depslog.StatsResult) {
	fmt.Println("--- Deps Log Summary ---")
	fmt.Printf("File:               %s\n", result.File)
	if result.SizeBytes >= 0 {
		fmt.Printf("Size:               %d bytes\n", result.SizeBytes)
	}
	fmt.Printf("Format version:     %d\n", result.Version)
	fmt.Printf("Nodes:              %d\n", result.Nodes)
	fmt.Printf("Deps records:       %d\n", result.DepsRecords)
	fmt.Printf("Targets with deps:  %d\n", result.Owners)
	fmt.Printf("Current edges:      %d\n", result.Edges)
	fmt.Printf("Reverse references: %d\n", result.ReverseRefs)
	fmt.Printf("Latest mtime:       %d\n", result.LatestMTime)
	fmt.Println("------------------------")
}
