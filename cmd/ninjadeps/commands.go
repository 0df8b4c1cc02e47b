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

	"github.com/AleutianAI/ninjadeps/cmd/ninjadeps/config"
	"github.com/AleutianAI/ninjadeps/pkg/logging"
	"github.com/AleutianAI/ninjadeps/pkg/ux"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	depsFile   string // -f override; empty means "use config"
	jsonOutput bool
	verbose    bool

	logger = logging.Default()

	rootCmd = &cobra.Command{
		Use:   "ninjadeps",
		Short: "Inspect ninja's binary dependency log",
		Long: `ninjadeps decodes the .ninja_deps file that ninja maintains for
incremental builds. It can list what a target depended on at its last
build, list everything that has ever depended on a file, and dump or
summarize the whole log.`,
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if err := config.Load(); err != nil {
			ux.Warning(fmt.Sprintf("config: %v (continuing with defaults)", err))
		}
		// An explicit --json always wins; the config only sets the
		// default.
		if config.Global.Output.JSON && !rootCmd.PersistentFlags().Changed("json") {
			jsonOutput = true
		}
		applyColorMode()
		logger = newLogger()
	}

	rootCmd.PersistentFlags().StringVarP(&depsFile, "file", "f", "",
		`Path to the deps log (default ".ninja_deps", or deps_file from config)`)
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output as JSON for scripting")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log at debug level")

	rootCmd.AddCommand(queryCmd) // Defined in cmd_query.go
	rootCmd.AddCommand(dumpCmd)  // Defined in cmd_dump.go
	rootCmd.AddCommand(statsCmd) // Defined in cmd_stats.go
}
