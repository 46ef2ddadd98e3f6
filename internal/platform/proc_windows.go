// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows
// +build windows

package platform

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// KillPID terminates the process with the given PID.
func KillPID(pid int) error {
	h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, uint32(pid))
	if err != nil {
		if err == windows.ERROR_INVALID_PARAMETER {
			// OpenProcess reports a dead or never-alive PID this way.
			return ErrProcessNotFound
		}
		return err
	}
	defer windows.CloseHandle(h)
	return windows.TerminateProcess(h, 1)
}

// KillByName terminates every process whose image name matches name
// (case-insensitive, ".exe" optional) and returns how many were signalled.
func KillByName(name string) (int, error) {
	if !strings.HasSuffix(strings.ToLower(name), ".exe") {
		name += ".exe"
	}

	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, err
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	killed := 0
	var lastErr error
	err = windows.Process32First(snapshot, &entry)
	for err == nil {
		exe := windows.UTF16ToString(entry.ExeFile[:])
		if strings.EqualFold(exe, name) {
			if killErr := KillPID(int(entry.ProcessID)); killErr != nil {
				lastErr = killErr
			} else {
				killed++
			}
		}
		err = windows.Process32Next(snapshot, &entry)
	}

	if killed == 0 {
		if lastErr != nil {
			return 0, lastErr
		}
		return 0, ErrProcessNotFound
	}
	return killed, nil
}
