// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"
)

func TestNewManagerAssignsUniqueIDs(t *testing.T) {
	a := NewManager()
	b := NewManager()
	if a.ID() == "" {
		t.Fatal("session ID should not be empty")
	}
	if a.ID() == b.ID() {
		t.Errorf("two sessions share ID %q", a.ID())
	}
}

func TestRecordCommandCounts(t *testing.T) {
	m := NewManager()
	m.RecordCommand(false)
	m.RecordCommand(true)
	m.RecordCommand(false)

	if got := m.CommandsRun(); got != 3 {
		t.Errorf("CommandsRun = %d, want 3", got)
	}
	if got := m.ErrorsSeen(); got != 1 {
		t.Errorf("ErrorsSeen = %d, want 1", got)
	}
}

func TestStatusSnapshot(t *testing.T) {
	m := NewManager()
	m.RecordCommand(true)

	st := m.Status()
	if st.SessionID != m.ID() {
		t.Errorf("Status.SessionID = %q, want %q", st.SessionID, m.ID())
	}
	if st.CommandsRun != 1 || st.ErrorsSeen != 1 {
		t.Errorf("Status counters = %d/%d, want 1/1", st.CommandsRun, st.ErrorsSeen)
	}
	if st.Uptime < 0 {
		t.Errorf("Uptime = %v, want non-negative", st.Uptime)
	}
	if st.StartTime.IsZero() {
		t.Error("StartTime should be set")
	}
}
