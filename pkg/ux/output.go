// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the ninjadeps CLI.
//
// Everything here writes to stderr. Query and dump payloads on stdout must
// stay byte-deterministic, so styling never touches them. Color is gated on
// the resolved ColorMode: auto (default) styles only when stderr is a
// terminal, and NO_COLOR or NINJADEPS_COLOR=never switch it off entirely.
package ux

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Aleutian color palette - deep ocean teals and arctic waters
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // Bright teal - highlights, success
	ColorTealPrimary = lipgloss.Color("#20B9B4") // Primary teal - main brand color
	ColorSlate       = lipgloss.Color("#2C4A54") // Slate - muted text, borders

	// Semantic colors (keeping standard conventions for clarity)
	ColorSuccess = lipgloss.Color("#2CD7C7") // Bright teal for success
	ColorWarning = lipgloss.Color("#F4D03F") // Gold/amber for warnings
	ColorError   = lipgloss.Color("#E74C3C") // Red for errors
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealPrimary).Bold(true),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	if !colorEnabled() {
		return string(i)
	}
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return string(i)
	}
}

// =============================================================================
// Color Mode
// =============================================================================

// ColorMode controls when styling is applied.
type ColorMode int

const (
	// ColorAuto styles output only when stderr is a terminal.
	ColorAuto ColorMode = iota

	// ColorAlways styles output unconditionally.
	ColorAlways

	// ColorNever disables styling.
	ColorNever
)

// ParseColorMode maps "auto", "always", or "never" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

var (
	modeMu  sync.RWMutex
	modeSet bool
	mode    ColorMode
	envOnce sync.Once
	envMode ColorMode
)

// SetColorMode overrides the environment-derived color mode. Config loading
// calls this; tests use it to pin behavior.
func SetColorMode(m ColorMode) {
	modeMu.Lock()
	defer modeMu.Unlock()
	mode = m
	modeSet = true
}

// GetColorMode returns the mode currently in effect: an explicit SetColorMode
// value if one was given, otherwise the mode derived from the environment.
func GetColorMode() ColorMode {
	modeMu.RLock()
	m, ok := mode, modeSet
	modeMu.RUnlock()
	if ok {
		return m
	}
	envOnce.Do(func() {
		envMode = modeFromEnv()
	})
	return envMode
}

// colorEnabled resolves the active mode. Explicit SetColorMode wins, then
// NO_COLOR, then NINJADEPS_COLOR, then a TTY check on stderr.
func colorEnabled() bool {
	modeMu.RLock()
	m, ok := mode, modeSet
	modeMu.RUnlock()
	if !ok {
		envOnce.Do(func() {
			envMode = modeFromEnv()
		})
		m = envMode
	}
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		fd := os.Stderr.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

func modeFromEnv() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}
	m, err := ParseColorMode(os.Getenv("NINJADEPS_COLOR"))
	if err != nil {
		return ColorAuto
	}
	return m
}

// =============================================================================
// Print Helpers
// =============================================================================

// Title prints a styled title line.
func Title(text string) {
	if !colorEnabled() {
		fmt.Fprintln(os.Stderr, text)
		return
	}
	fmt.Fprintln(os.Stderr, Styles.Title.Render(text))
}

// Success prints a success message with checkmark.
func Success(text string) {
	if !colorEnabled() {
		fmt.Fprintf(os.Stderr, "OK: %s\n", text)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
}

// Warning prints a warning message.
func Warning(text string) {
	if !colorEnabled() {
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
}

// Error prints an error message.
func Error(text string) {
	if !colorEnabled() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", text)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", IconError.Render(), Styles.Error.Render(text))
}

// Info prints an informational message.
func Info(text string) {
	if !colorEnabled() {
		fmt.Fprintln(os.Stderr, text)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", Styles.Muted.Render("│"), text)
}

// Muted prints muted/secondary text.
func Muted(text string) {
	if !colorEnabled() {
		fmt.Fprintln(os.Stderr, text)
		return
	}
	fmt.Fprintln(os.Stderr, Styles.Muted.Render(text))
}
