// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection and handling for the bubbleos shell.
//
// This file provides utilities for detecting terminal capabilities:
// - TTY detection for stdin/stdout
// - Terminal width detection for text wrapping
// - Color output control based on TTY, NO_COLOR, and the configured
//   color mode

package cli

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/bubbleos-lite/internal/util"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
// Use this to determine if interactive prompts are possible.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
// Use this to determine if colored output should be used.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width used for wrapping
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth (80) if width cannot be determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// WrapText wraps text at word boundaries to fit the given display width,
// preserving existing newlines. Width is measured with go-runewidth, so
// double-width runes wrap where they render, not where their bytes fall.
// A maxWidth of 0 or less means the detected terminal width.
func WrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = GetTerminalWidth()
	}

	// Leave some margin for readability
	if maxWidth > 10 {
		maxWidth -= 2
	}

	var wrapped []string
	for _, line := range strings.Split(text, "\n") {
		if util.StringWidth(line) <= maxWidth {
			wrapped = append(wrapped, line)
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = word
			case util.StringWidth(current)+1+util.StringWidth(word) <= maxWidth:
				current += " " + word
			default:
				wrapped = append(wrapped, current)
				current = word
			}
		}
		wrapped = append(wrapped, current)
	}

	return strings.Join(wrapped, "\n")
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	// colorMode is the configured mode: "auto", "always", or "never".
	// Set once at startup from the loaded configuration.
	colorMode = "auto"

	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// SetColorMode applies the configured color mode. Resets the cached
// decision and the lipgloss profile so styles pick up the new mode.
// Call this once at startup, before any styled output.
func SetColorMode(mode string) {
	colorMode = strings.ToLower(mode)
	colorsEnabledOnce = sync.Once{}
	lipgloss.SetColorProfile(GetColorProfile())
}

// ColorsEnabled returns true if colored output should be used.
// Honors the configured color mode, the NO_COLOR environment variable
// (https://no-color.org/), FORCE_COLOR, and TTY detection, in that order.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		switch colorMode {
		case "always":
			colorsEnabled = true
			return
		case "never":
			colorsEnabled = false
			return
		}

		// NO_COLOR takes precedence (any non-empty value disables colors)
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}

		// FORCE_COLOR overrides TTY detection
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}

		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// ForceColorsEnabled allows overriding color detection (for testing).
// This should only be used in tests.
func ForceColorsEnabled(enabled bool) {
	colorsEnabledOnce = sync.Once{}
	colorsEnabledOnce.Do(func() {
		colorsEnabled = enabled
	})
}

// GetColorProfile returns the appropriate termenv color profile.
// Returns Ascii (no colors) for non-TTY or when colors are disabled.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	// Let termenv auto-detect the best profile for this terminal
	return termenv.ColorProfile()
}
