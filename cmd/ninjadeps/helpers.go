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
	"os"
	"time"

	"github.com/AleutianAI/ninjadeps/cmd/ninjadeps/config"
	"github.com/AleutianAI/ninjadeps/cmd/ninjadeps/internal/depslog"
	"github.com/AleutianAI/ninjadeps/pkg/logging"
	"github.com/AleutianAI/ninjadeps/pkg/ux"
)

// resolveDepsFile applies the flag > env > config-file precedence for
// the deps log path. config.Load has already folded NINJADEPS_FILE into
// the global config, so only the flag needs checking here.
func resolveDepsFile() string {
	if depsFile != "" {
		return depsFile
	}
	if cfg := config.Global.DepsFile; cfg != "" {
		return cfg
	}
	return depslog.DefaultFile
}

// loadIndex reads and indexes the deps log at path.
func loadIndex(path string) (*depslog.Index, error) {
	start := time.Now()
	idx, err := depslog.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("deps log loaded",
		"file", path,
		"nodes", idx.NodeCount(),
		"deps_records", idx.DepsRecordCount(),
		"elapsed_ms", time.Since(start).Milliseconds())
	return idx, nil
}

// applyColorMode promotes an explicit always/never choice from the
// config to the ux layer. "auto" stays environment-resolved, and
// NO_COLOR wins over any config choice.
func applyColorMode() {
	if os.Getenv("NO_COLOR") != "" {
		return
	}
	mode, err := ux.ParseColorMode(config.Global.Output.Color)
	if err != nil || mode == ux.ColorAuto {
		return
	}
	ux.SetColorMode(mode)
}

// newLogger builds the command logger from config and the --verbose
// flag. Bad level strings fall back to the default rather than failing
// the command.
func newLogger() *logging.Logger {
	level, err := logging.ParseLevel(config.Global.Log.Level)
	if err != nil {
		level = logging.LevelWarn
	}
	if verbose {
		level = logging.LevelDebug
	}
	return logging.New(logging.Config{
		Level:   level,
		LogDir:  config.Global.Log.Dir,
		Service: "ninjadeps",
	})
}
