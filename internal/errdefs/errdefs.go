// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package errdefs defines the user-facing error catalog for bubbleos-lite
// and the classifier that maps OS-level errors onto it.
//
// The catalog is a fixed set of sixteen kinds with stable codes 1-16. Every
// handler failure resolves to exactly one kind; anything the classifier does
// not recognize falls through to the fatal catch-all (code 0), which always
// surfaces the raw underlying message. Codes are cross-reference identifiers
// only and are never used as process exit codes.
package errdefs

import "fmt"

// =============================================================================
// ERROR CODES
// =============================================================================

// Code identifies one entry in the error catalog.
type Code int

const (
	// CodeFatal is the catch-all for unclassified failures. It sits outside
	// the stable 1-16 catalog range.
	CodeFatal Code = 0

	CodeMissingArgument     Code = 1  // required parameter not supplied
	CodeNonExistent         Code = 2  // file/directory/source does not exist
	CodeAlreadyExists       Code = 3  // target already exists
	CodeExpectedFile        Code = 4  // operation needs a file, got a directory
	CodeExpectedDirectory   Code = 5  // operation needs a directory, got a file
	CodeNoPermissions       Code = 6  // permission denied for this operation
	CodeInUse               Code = 7  // resource busy or locked
	CodePathTooLong         Code = 8  // path exceeds the platform limit
	CodeInvalidCharacters   Code = 9  // name contains characters the platform rejects
	CodeUnrecognizedCommand Code = 10 // input matched no command prefix
	CodeNoCommand           Code = 11 // empty input line
	CodeUnsupportedPath     Code = 12 // UNC/network path form, rejected up front
	CodeInvalidLineNumber   Code = 13 // editor line number out of range
	CodeEmptyBuffer         Code = 14 // editor has nothing to edit
	CodeNoSuchProcess       Code = 15 // taskkill target not found
	CodeDiskFull            Code = 16 // no space left on device
)

// String returns the machine-readable tag for a code.
func (c Code) String() string {
	switch c {
	case CodeMissingArgument:
		return "MISSING_ARGUMENT"
	case CodeNonExistent:
		return "NON_EXISTENT"
	case CodeAlreadyExists:
		return "PATH_EXISTS"
	case CodeExpectedFile:
		return "EXPECTED_FILE"
	case CodeExpectedDirectory:
		return "EXPECTED_DIRECTORY"
	case CodeNoPermissions:
		return "NO_PERMISSIONS"
	case CodeInUse:
		return "IN_USE"
	case CodePathTooLong:
		return "PATH_TOO_LONG"
	case CodeInvalidCharacters:
		return "INVALID_CHARACTERS"
	case CodeUnrecognizedCommand:
		return "UNRECOGNIZED_COMMAND"
	case CodeNoCommand:
		return "NO_COMMAND"
	case CodeUnsupportedPath:
		return "UNSUPPORTED_PATH"
	case CodeInvalidLineNumber:
		return "INVALID_LINE_NUMBER"
	case CodeEmptyBuffer:
		return "EMPTY_BUFFER"
	case CodeNoSuchProcess:
		return "NO_SUCH_PROCESS"
	case CodeDiskFull:
		return "DISK_FULL"
	default:
		return "FATAL"
	}
}

// =============================================================================
// REPORT
// =============================================================================

// Report is one rendered catalog entry: the kind, the formatted message, and
// the underlying OS error when one triggered it. It implements error so
// handlers can return it directly.
type Report struct {
	Kind    Code
	Message string
	Cause   error
}

func (r *Report) Error() string {
	return r.Message
}

func (r *Report) Unwrap() error {
	return r.Cause
}

// IsKind reports whether err is a *Report with the given code.
func IsKind(err error, code Code) bool {
	if r, ok := err.(*Report); ok {
		return r.Kind == code
	}
	return false
}

// =============================================================================
// CATALOG CONSTRUCTORS
// =============================================================================
// Field counts and order are fixed per kind. Adding a failure mode means
// adding a new constructor, never overloading an existing code.

// MissingArgument reports a required parameter that was not supplied.
// The usage example is shown verbatim so the user can retry.
func MissingArgument(what, example string) *Report {
	return &Report{
		Kind:    CodeMissingArgument,
		Message: fmt.Sprintf("You must enter %s. Example: %s", what, example),
	}
}

// NonExistent reports a missing file, directory, or other named thing.
func NonExistent(kind, name string) *Report {
	return &Report{
		Kind:    CodeNonExistent,
		Message: fmt.Sprintf("The %s '%s' does not exist.", kind, name),
	}
}

// AlreadyExists reports a target that is already present.
func AlreadyExists(kind, name string) *Report {
	return &Report{
		Kind:    CodeAlreadyExists,
		Message: fmt.Sprintf("The %s '%s' already exists.", kind, name),
	}
}

// ExpectedFile reports a directory where a file was required.
func ExpectedFile(name string) *Report {
	return &Report{
		Kind:    CodeExpectedFile,
		Message: fmt.Sprintf("'%s' is a directory, but this command needs a file.", name),
	}
}

// ExpectedDirectory reports a file where a directory was required.
func ExpectedDirectory(name string) *Report {
	return &Report{
		Kind:    CodeExpectedDirectory,
		Message: fmt.Sprintf("'%s' is not a directory.", name),
	}
}

// NoPermissions reports a permission failure. The action verb comes from the
// operation context, so EPERM while deleting reads differently from EPERM
// while renaming.
func NoPermissions(action, name string) *Report {
	return &Report{
		Kind:    CodeNoPermissions,
		Message: fmt.Sprintf("You do not have permission to %s '%s'.", action, name),
	}
}

// InUse reports a busy or locked resource.
func InUse(kind, name string) *Report {
	return &Report{
		Kind:    CodeInUse,
		Message: fmt.Sprintf("The %s '%s' is in use by another program.", kind, name),
	}
}

// PathTooLong reports a path that exceeds the platform limit.
func PathTooLong(path string) *Report {
	return &Report{
		Kind:    CodePathTooLong,
		Message: fmt.Sprintf("The path '%s' is too long for this system.", path),
	}
}

// InvalidCharacters reports a name containing characters the platform
// rejects. mustNotContain lists the offending character set.
func InvalidCharacters(kind, mustNotContain, name string) *Report {
	return &Report{
		Kind:    CodeInvalidCharacters,
		Message: fmt.Sprintf("The %s name '%s' must not contain %s.", kind, name, mustNotContain),
	}
}

// UnrecognizedCommand reports input that matched no command prefix.
func UnrecognizedCommand(line string) *Report {
	return &Report{
		Kind:    CodeUnrecognizedCommand,
		Message: fmt.Sprintf("The command '%s' is unrecognized. Type 'help' for a list of commands.", line),
	}
}

// NoCommand reports an empty input line.
func NoCommand() *Report {
	return &Report{
		Kind:    CodeNoCommand,
		Message: "No command was entered. Type 'help' for a list of commands.",
	}
}

// UnsupportedPath reports a UNC/network path, which is rejected before any
// OS call is attempted.
func UnsupportedPath(path string) *Report {
	return &Report{
		Kind:    CodeUnsupportedPath,
		Message: fmt.Sprintf("Network (UNC) paths such as '%s' are not supported.", path),
	}
}

// InvalidLineNumber reports an editor line number outside the buffer bounds.
func InvalidLineNumber(got, max int) *Report {
	return &Report{
		Kind:    CodeInvalidLineNumber,
		Message: fmt.Sprintf("Line %d does not exist; the buffer has %d line(s).", got, max),
	}
}

// EmptyBuffer reports an edit attempt on an empty editor buffer.
func EmptyBuffer() *Report {
	return &Report{
		Kind:    CodeEmptyBuffer,
		Message: "The buffer is empty; there is nothing to edit yet.",
	}
}

// NoSuchProcess reports a taskkill target that could not be found.
func NoSuchProcess(ident string) *Report {
	return &Report{
		Kind:    CodeNoSuchProcess,
		Message: fmt.Sprintf("No running process matches '%s'.", ident),
	}
}

// DiskFull reports an exhausted filesystem.
func DiskFull(path string) *Report {
	return &Report{
		Kind:    CodeDiskFull,
		Message: fmt.Sprintf("There is no space left on the device holding '%s'.", path),
	}
}

// Fatal is the catch-all terminal branch for errors no catalog entry covers.
// The raw platform message is always surfaced, never swallowed.
func Fatal(err error) *Report {
	return &Report{
		Kind:    CodeFatal,
		Message: fmt.Sprintf("An unexpected error occurred: %v", err),
		Cause:   err,
	}
}
