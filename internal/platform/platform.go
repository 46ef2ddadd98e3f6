// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package platform is the environment collaborator the command handlers
// consult: OS naming, path normalization and casing rules, UNC detection,
// and best-effort process termination. Handlers use it but never implement
// platform detection themselves.
package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrProcessNotFound is returned by KillPID/KillByName when no running
// process matches the given identifier.
var ErrProcessNotFound = errors.New("process not found")

// ErrNameLookupUnsupported is returned by KillByName on platforms without a
// process-listing facility this shell knows how to read.
var ErrNameLookupUnsupported = errors.New("killing by name is not supported on this platform")

// =============================================================================
// OS IDENTITY
// =============================================================================

// OSName returns the human-readable name of the host OS.
func OSName() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	case "freebsd":
		return "FreeBSD"
	default:
		return runtime.GOOS
	}
}

// CaseInsensitiveFS reports whether the default filesystem compares names
// case-insensitively.
func CaseInsensitiveFS() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

// =============================================================================
// PATH HANDLING
// =============================================================================

// IsUNCPath reports whether p is a network (UNC) path form. These are
// rejected at validation time, before any OS call.
func IsUNCPath(p string) bool {
	return strings.HasPrefix(p, `\\`) || strings.HasPrefix(p, "//")
}

// ResolvePath turns user input into an absolute, cleaned, NFC-normalized
// path with platform-correct casing for the components that exist.
func ResolvePath(raw string) (string, error) {
	p := norm.NFC.String(strings.TrimSpace(raw))
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return casedPath(filepath.Clean(abs)), nil
}

// casedPath rewrites the existing components of an absolute path with the
// casing the filesystem actually stores. On case-sensitive filesystems the
// path is returned unchanged. Components that do not exist yet keep the
// user's spelling.
func casedPath(abs string) string {
	if !CaseInsensitiveFS() {
		return abs
	}

	vol := filepath.VolumeName(abs)
	rest := strings.TrimPrefix(abs[len(vol):], string(filepath.Separator))
	if rest == "" {
		return abs
	}

	comps := strings.Split(rest, string(filepath.Separator))
	cased := vol + string(filepath.Separator)
	for i, comp := range comps {
		entries, err := os.ReadDir(cased)
		if err != nil {
			// Past the deepest existing directory; keep the user's spelling
			// for the remainder.
			return filepath.Join(append([]string{cased}, comps[i:]...)...)
		}
		match := comp
		for _, e := range entries {
			if strings.EqualFold(e.Name(), comp) {
				match = e.Name()
				break
			}
		}
		cased = filepath.Join(cased, match)
	}
	return cased
}
