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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveGlobal(t *testing.T) {
	t.Helper()
	orig := Global
	t.Cleanup(func() { Global = orig })

	// Pin the overrides so ambient NINJADEPS_* values cannot leak in.
	t.Setenv(EnvDepsFile, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvColor, "")
}

// TestLoadFrom_MissingFile verifies defaults apply when no config exists.
func TestLoadFrom_MissingFile(t *testing.T) {
	saveGlobal(t)

	err := loadFrom(filepath.Join(t.TempDir(), "ninjadeps.yaml"))
	require.NoError(t, err, "a missing config file must not be an error")

	assert.Equal(t, ".ninja_deps", Global.DepsFile)
	assert.Equal(t, "warn", Global.Log.Level)
	assert.Equal(t, "auto", Global.Output.Color)
	assert.False(t, Global.Output.JSON)
}

// TestLoadFrom_FileOverridesDefaults verifies yaml values win over defaults.
func TestLoadFrom_FileOverridesDefaults(t *testing.T) {
	saveGlobal(t)

	path := filepath.Join(t.TempDir(), "ninjadeps.yaml")
	content := []byte("deps_file: build/.ninja_deps\nlog:\n  level: debug\noutput:\n  color: never\n  json: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	require.NoError(t, loadFrom(path))

	assert.Equal(t, "build/.ninja_deps", Global.DepsFile)
	assert.Equal(t, "debug", Global.Log.Level)
	assert.Equal(t, "never", Global.Output.Color)
	assert.True(t, Global.Output.JSON)
}

// TestLoadFrom_PartialFileKeepsDefaults verifies unset keys keep defaults.
func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	saveGlobal(t)

	path := filepath.Join(t.TempDir(), "ninjadeps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deps_file: out/.ninja_deps\n"), 0o644))

	require.NoError(t, loadFrom(path))

	assert.Equal(t, "out/.ninja_deps", Global.DepsFile)
	assert.Equal(t, "warn", Global.Log.Level, "unset log level keeps the default")
	assert.Equal(t, "auto", Global.Output.Color, "unset color keeps the default")
}

// TestLoadFrom_EnvOverridesFile verifies NINJADEPS_* wins over the file.
func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	saveGlobal(t)

	path := filepath.Join(t.TempDir(), "ninjadeps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deps_file: from_file\nlog:\n  level: error\n"), 0o644))

	t.Setenv(EnvDepsFile, "from_env")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvColor, "always")

	require.NoError(t, loadFrom(path))

	assert.Equal(t, "from_env", Global.DepsFile)
	assert.Equal(t, "debug", Global.Log.Level)
	assert.Equal(t, "always", Global.Output.Color)
}

// TestLoadFrom_MalformedYAML verifies parse failures surface.
func TestLoadFrom_MalformedYAML(t *testing.T) {
	saveGlobal(t)

	path := filepath.Join(t.TempDir(), "ninjadeps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deps_file: [unclosed\n"), 0o644))

	assert.Error(t, loadFrom(path))
}

// TestLoadFrom_InvalidValues verifies validation rejects bad enums.
func TestLoadFrom_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log:\n  level: verbose\n"},
		{"bad color mode", "output:\n  color: rainbow\n"},
		{"empty deps file", "deps_file: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveGlobal(t)

			path := filepath.Join(t.TempDir(), "ninjadeps.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			assert.Error(t, loadFrom(path), "content %q must fail validation", tt.content)
		})
	}
}

// TestLoadFrom_InvalidEnvValue verifies bad env values fail validation too.
func TestLoadFrom_InvalidEnvValue(t *testing.T) {
	saveGlobal(t)

	t.Setenv(EnvLogLevel, "chatty")

	err := loadFrom(filepath.Join(t.TempDir(), "ninjadeps.yaml"))
	assert.Error(t, err)
}

// TestDefaultConfig verifies the out-of-the-box values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".ninja_deps", cfg.DepsFile)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Dir)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.NoError(t, validate.Struct(&cfg), "defaults must pass their own validation")
}
