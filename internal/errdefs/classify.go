// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// classify.go - Maps platform error codes onto the error catalog.
//
// Every command handler routes its caught OS errors through Classify instead
// of deriving its own mapping. The operation context (verb + subject) selects
// the wording, so the same errno renders differently per command.
package errdefs

import (
	"errors"
	"io/fs"
	"runtime"
	"syscall"
)

// =============================================================================
// OPERATION CONTEXT
// =============================================================================

// Op is the operation context a handler passes to Classify: what was being
// attempted (a verb like "delete" or "rename") and what kind of thing the
// path names (a subject like "file" or "directory").
type Op struct {
	Verb    string
	Subject string
}

// currentGOOS is runtime.GOOS, overridable in tests to exercise the
// Windows path-length quirk from any platform.
var currentGOOS = runtime.GOOS

// windowsPathLimit is the classic MAX_PATH bound. On Windows an overlong
// path surfaces as EINVAL rather than ENAMETOOLONG; Classify uses this limit
// to tell the two apart.
const windowsPathLimit = 260

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classify maps a caught OS error to exactly one catalog entry for the given
// operation context. Unmapped errors fall through to the fatal catch-all,
// which carries the raw platform message. A nil err returns nil.
func Classify(op Op, path string, err error) *Report {
	if err == nil {
		return nil
	}

	// Already classified upstream.
	if r, ok := err.(*Report); ok {
		return r
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NonExistent(op.Subject, path)

	case errors.Is(err, fs.ErrExist):
		return AlreadyExists(op.Subject, path)

	case errors.Is(err, fs.ErrPermission):
		return NoPermissions(op.Verb, path)

	case errors.Is(err, syscall.EBUSY):
		return InUse(op.Subject, path)

	case errors.Is(err, syscall.EISDIR):
		return ExpectedFile(path)

	case errors.Is(err, syscall.ENOTDIR):
		return ExpectedDirectory(path)

	case errors.Is(err, syscall.ENOSPC):
		return DiskFull(path)

	case errors.Is(err, syscall.ENAMETOOLONG):
		return PathTooLong(path)

	case errors.Is(err, syscall.EINVAL):
		// Windows reports an overlong path as EINVAL where POSIX uses
		// ENAMETOOLONG. Only treat it as "path too long" when the triggering
		// input actually was overlong; otherwise the name held characters
		// the platform rejects.
		if currentGOOS == "windows" && len(path) >= windowsPathLimit {
			return PathTooLong(path)
		}
		return InvalidCharacters(op.Subject, `< > : " / \ | ? *`, path)

	default:
		return Fatal(err)
	}
}
