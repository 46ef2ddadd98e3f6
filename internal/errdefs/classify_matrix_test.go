// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package errdefs

import (
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassifyMatrix walks every documented errno across the operation
// contexts the handlers use and asserts none of them falls through to the
// catch-all.
func TestClassifyMatrix(t *testing.T) {
	ops := []Op{
		{Verb: "create", Subject: "file"},
		{Verb: "create", Subject: "directory"},
		{Verb: "read", Subject: "file"},
		{Verb: "copy", Subject: "source"},
		{Verb: "delete", Subject: "file"},
		{Verb: "delete", Subject: "directory"},
		{Verb: "rename", Subject: "path"},
		{Verb: "list", Subject: "directory"},
		{Verb: "write", Subject: "file"},
		{Verb: "change into", Subject: "directory"},
	}
	errnos := map[syscall.Errno]Code{
		syscall.ENOENT:       CodeNonExistent,
		syscall.EEXIST:       CodeAlreadyExists,
		syscall.EPERM:        CodeNoPermissions,
		syscall.EACCES:       CodeNoPermissions,
		syscall.EBUSY:        CodeInUse,
		syscall.EISDIR:       CodeExpectedFile,
		syscall.ENOTDIR:      CodeExpectedDirectory,
		syscall.ENOSPC:       CodeDiskFull,
		syscall.ENAMETOOLONG: CodePathTooLong,
		syscall.EINVAL:       CodeInvalidCharacters,
	}

	for _, op := range ops {
		for errno, want := range errnos {
			report := Classify(op, "/tmp/subject", &fs.PathError{Op: op.Verb, Path: "/tmp/subject", Err: errno})
			require.NotNil(t, report, "%s/%v", op.Verb, errno)
			assert.Equal(t, want, report.Kind, "op %q errno %v", op.Verb, errno)
			assert.NotEqual(t, CodeFatal, report.Kind, "documented errno must never hit the catch-all")
		}
	}
}
