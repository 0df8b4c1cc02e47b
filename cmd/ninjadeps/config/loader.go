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

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied on top of the file. Command flags still win
// over both.
const (
	EnvDepsFile = "NINJADEPS_FILE"
	EnvLogLevel = "NINJADEPS_LOG_LEVEL"
	EnvColor    = "NINJADEPS_COLOR"
)

var (
	// Global is a singleton instance
	Global NinjadepsConfig
	once   sync.Once

	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// Load ensures the config is loaded into the Global variable.
//
// Precedence: defaults, then ~/.ninjadeps/ninjadeps.yaml if present, then
// NINJADEPS_* environment variables. A missing file is not an error; the
// tool must work out of the box in a bare checkout.
func Load() error {
	var err error
	once.Do(func() {
		var path string
		path, err = defaultPath()
		if err != nil {
			// No resolvable home. Run on defaults plus environment.
			Global = DefaultConfig()
			applyEnv(&Global)
			err = validate.Struct(&Global)
			return
		}
		err = loadFrom(path)
	})
	return err
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".ninjadeps", "ninjadeps.yaml"), nil
}

// loadFrom fills Global from the file at path, the environment, and the
// defaults, in reverse order of precedence.
func loadFrom(path string) error {
	Global = DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run or no config wanted. Defaults are the config.
	case err != nil:
		return fmt.Errorf("failed to read the config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &Global); err != nil {
			return fmt.Errorf("failed to parse the config file %s: %w", path, err)
		}
	}

	applyEnv(&Global)

	if err := validate.Struct(&Global); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *NinjadepsConfig) {
	if v := os.Getenv(EnvDepsFile); v != "" {
		cfg.DepsFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Output.Color = v
	}
}
