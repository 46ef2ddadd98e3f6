// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the lifetime of one interactive shell run:
// a unique session ID, the start time, and per-command counters used
// by sysinfo and the exit summary.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager tracks session state for the current shell run.
type Manager struct {
	mu sync.Mutex

	sessionID string
	startTime time.Time

	commandsRun int
	errorsSeen  int
}

// NewManager starts a new session with a fresh ID.
func NewManager() *Manager {
	return &Manager{
		sessionID: uuid.NewString(),
		startTime: time.Now(),
	}
}

// ID returns the unique session identifier.
func (m *Manager) ID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// StartTime returns when the session began.
func (m *Manager) StartTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startTime
}

// Uptime returns how long the session has been running.
func (m *Manager) Uptime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Since(m.startTime)
}

// RecordCommand counts one dispatched command. Pass failed=true when
// the command reported an error.
func (m *Manager) RecordCommand(failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsRun++
	if failed {
		m.errorsSeen++
	}
}

// CommandsRun returns the number of commands dispatched this session.
func (m *Manager) CommandsRun() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandsRun
}

// ErrorsSeen returns the number of commands that reported an error.
func (m *Manager) ErrorsSeen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorsSeen
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a point-in-time snapshot of the session.
type Status struct {
	SessionID   string
	StartTime   time.Time
	Uptime      time.Duration
	CommandsRun int
	ErrorsSeen  int
}

// Status returns a snapshot of the session counters.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Status{
		SessionID:   m.sessionID,
		StartTime:   m.startTime,
		Uptime:      time.Since(m.startTime),
		CommandsRun: m.commandsRun,
		ErrorsSeen:  m.errorsSeen,
	}
}
