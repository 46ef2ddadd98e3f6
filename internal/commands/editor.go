// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// editor.go - The interactive line-accumulation content editor behind the
// edit command.
//
// The editor reads one line at a time into an ordered buffer. Three
// sentinels control it: !SAVE writes the buffer, !CANCEL discards it, and
// !EDIT replaces one existing line. Everything else is appended verbatim.
// Reads block with no timeout; one edit session fully completes before the
// shell reads its next command.

package commands

import (
	"io"
	"strconv"
	"strings"

	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
	"github.com/jeranaias/bubbleos-lite/internal/util"
)

// Editor sentinels.
const (
	editorSave   = "!SAVE"
	editorCancel = "!CANCEL"
	editorEdit   = "!EDIT"
)

// runEditor drives the content editor for path, which has already been
// resolved and validated by the edit command. Terminal states: save (the
// buffer is written, newline-joined with no trailing newline) or cancel
// (nothing is written). Line-edit mistakes are reported and the loop
// continues.
func runEditor(ctx *Context, path string) error {
	ctx.Term.Info("Editing '%s'.", path)
	ctx.Term.Dim("Type lines to append. %s writes the file, %s discards, %s replaces a line.",
		editorSave, editorCancel, editorEdit)

	var buffer []string

	for {
		line, err := ctx.Term.ReadLine("... ")
		if err != nil {
			if err == io.EOF {
				// Input ended mid-edit; treat as cancel
				ctx.Term.Dim("Input ended. Nothing was written.")
				return nil
			}
			return errdefs.Fatal(err)
		}

		switch strings.TrimSpace(line) {
		case editorSave:
			content := strings.Join(buffer, "\n")
			if err := util.AtomicWriteFile(path, []byte(content), 0644); err != nil {
				return errdefs.Classify(errdefs.Op{Verb: "write", Subject: "file"}, path, err)
			}
			ctx.Term.Success("Saved %d line(s) to '%s'.", len(buffer), path)
			return nil

		case editorCancel:
			ctx.Term.Dim("Cancelled. Nothing was written.")
			return nil

		case editorEdit:
			if err := editLine(ctx, buffer); err != nil {
				ctx.Term.ShowError(err)
			}

		default:
			buffer = append(buffer, line)
		}
	}
}

// editLine prompts for a 1-based line number and replacement text. The
// buffer is modified in place only when the number is in range.
func editLine(ctx *Context, buffer []string) error {
	if len(buffer) == 0 {
		return errdefs.EmptyBuffer()
	}

	answer, err := ctx.Term.ReadLine("Line number: ")
	if err != nil {
		return errdefs.Fatal(err)
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil || n < 1 || n > len(buffer) {
		return errdefs.InvalidLineNumber(n, len(buffer))
	}

	replacement, err := ctx.Term.ReadLine("New content: ")
	if err != nil {
		return errdefs.Fatal(err)
	}
	buffer[n-1] = replacement
	return nil
}
