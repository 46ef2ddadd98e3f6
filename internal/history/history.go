// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides the session command log: an append-only list of
// raw input lines, in arrival order, living for the process lifetime.
//
// The dispatcher owns the single Log instance and passes it by reference to
// anything that needs to query it; there is no package-level singleton.
package history

import (
	"fmt"
	"strings"
)

// Log records every non-empty dispatched line. Entries are raw input, never
// the parsed form, and are never mutated after being appended.
type Log struct {
	entries []string
	limit   int
}

// New creates an empty log. limit caps the number of retained entries
// (oldest dropped first); zero means unlimited.
func New(limit int) *Log {
	return &Log{limit: limit}
}

// Append records a raw command line. Blank lines are the caller's problem;
// the dispatcher never appends them.
func (l *Log) Append(raw string) {
	l.entries = append(l.entries, raw)
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// All returns the entries in arrival order. The slice is a copy; mutating it
// does not affect the log.
func (l *Log) All() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// At returns the 1-based entry n, matching how the history command displays
// them.
func (l *Log) At(n int) (string, error) {
	if n < 1 || n > len(l.entries) {
		return "", fmt.Errorf("history entry %d does not exist (have %d)", n, len(l.entries))
	}
	return l.entries[n-1], nil
}

// Filter returns, in arrival order, the entries containing substr.
func (l *Log) Filter(substr string) []string {
	var out []string
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			out = append(out, e)
		}
	}
	return out
}
