// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command ninjadeps inspects ninja's binary dependency log.
//
// The .ninja_deps file records, for every build output, the inputs it
// depended on the last time it was built. ninjadeps decodes that log and
// answers the two questions the format can answer: what does a target
// depend on (query), and what has ever depended on a file (query -r).
// The dump and stats commands print the whole log.
package main

import (
	"os"

	"github.com/AleutianAI/ninjadeps/cmd/ninjadeps/internal/depslog"
	"github.com/joho/godotenv"
)

func main() {
	// Best-effort .env load; absence is the normal case.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Run handlers exit the process themselves, so an error here
		// means cobra rejected the invocation: unknown command, bad
		// flag, or a missing argument.
		os.Exit(depslog.ExitBadArgs)
	}
}
