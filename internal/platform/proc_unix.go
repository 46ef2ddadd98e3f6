// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows
// +build !windows

package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// KillPID terminates the process with the given PID.
func KillPID(pid int) error {
	err := unix.Kill(pid, unix.SIGKILL)
	if errors.Is(err, unix.ESRCH) {
		return ErrProcessNotFound
	}
	return err
}

// KillByName terminates every process whose command name matches name and
// returns how many were signalled. Best-effort: lookup uses procfs, so it is
// only available on Linux.
func KillByName(name string) (int, error) {
	pids, err := findPIDsByName(name)
	if err != nil {
		return 0, err
	}
	if len(pids) == 0 {
		return 0, ErrProcessNotFound
	}

	killed := 0
	var lastErr error
	for _, pid := range pids {
		if err := KillPID(pid); err != nil {
			lastErr = err
			continue
		}
		killed++
	}
	if killed == 0 {
		return 0, lastErr
	}
	return killed, nil
}

// findPIDsByName scans /proc for processes whose comm equals name. The comm
// field is the executable base name truncated to 15 characters, so the match
// tolerates that truncation.
func findPIDsByName(name string) ([]int, error) {
	if runtime.GOOS != "linux" {
		return nil, ErrNameLookupUnsupported
	}

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, err
	}

	name = strings.TrimSuffix(name, filepath.Ext(name))
	var pids []int
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		comm, err := os.ReadFile(filepath.Join("/proc", e.Name(), "comm"))
		if err != nil {
			continue
		}
		got := strings.TrimSpace(string(comm))
		if got == name || (len(got) == 15 && strings.HasPrefix(name, got)) {
			pids = append(pids, pid)
		}
	}
	return pids, nil
}
