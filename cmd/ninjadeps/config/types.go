// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

type NinjadepsConfig struct {
	// DepsFile: deps log read when -f is not given
	DepsFile string `yaml:"deps_file" validate:"required"`

	// Log: verbosity and optional file destination for diagnostics
	Log LogConfig `yaml:"log"`

	// Output: presentation defaults for the terminal
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"` // e.g. "warn"
	Dir   string `yaml:"dir,omitempty"`                                          // e.g. "~/.ninjadeps/logs"
}

type OutputConfig struct {
	// Color can be "auto", "always", or "never"
	Color string `yaml:"color" validate:"omitempty,oneof=auto always never"`

	// JSON makes every command default to --json envelopes
	JSON bool `yaml:"json"`
}

func DefaultConfig() NinjadepsConfig {
	return NinjadepsConfig{
		DepsFile: ".ninja_deps",
		Log: LogConfig{
			Level: "warn",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
