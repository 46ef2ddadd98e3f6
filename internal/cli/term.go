// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// term.go - The Terminal collaborator through which all shell I/O flows.
//
// Handlers never touch os.Stdin or os.Stdout directly; they go through a
// *Terminal so tests can substitute scripted input and capture output.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Terminal bundles the shell's input and output streams.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

// NewTerminal returns a Terminal bound to the process's standard streams.
func NewTerminal() *Terminal {
	return NewTerminalWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewTerminalWithStreams returns a Terminal reading from in and writing
// to out and errw. Tests use this with strings.Reader and bytes.Buffer.
func NewTerminalWithStreams(in io.Reader, out, errw io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		err: errw,
	}
}

// Out returns the output stream, for code that needs the raw writer.
func (t *Terminal) Out() io.Writer { return t.out }

// Err returns the error stream.
func (t *Terminal) Err() io.Writer { return t.err }

// ReadLine prints prompt and reads one line of input, without the
// trailing newline. Returns io.EOF when the stream is exhausted.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Final unterminated line still counts
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question and reads the answer.
// Only "y" or "yes" (case-insensitive) confirm; everything else,
// including an empty line or EOF, declines.
func (t *Terminal) Confirm(question string) bool {
	answer, err := t.ReadLine(fmt.Sprintf("%s [y/N]: ", question))
	if err != nil {
		return false
	}
	response := strings.ToLower(strings.TrimSpace(answer))
	return response == "y" || response == "yes"
}

// Printf writes formatted text to the output stream.
func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// Println writes a line to the output stream.
func (t *Terminal) Println(args ...any) {
	fmt.Fprintln(t.out, args...)
}

// Success writes a styled success message followed by a newline.
func (t *Terminal) Success(format string, args ...any) {
	fmt.Fprintln(t.out, RenderConditional(SuccessStyle, fmt.Sprintf(format, args...)))
}

// Info writes a styled informational message followed by a newline.
func (t *Terminal) Info(format string, args ...any) {
	fmt.Fprintln(t.out, RenderConditional(InfoStyle, fmt.Sprintf(format, args...)))
}

// Warn writes a styled warning followed by a newline.
func (t *Terminal) Warn(format string, args ...any) {
	fmt.Fprintln(t.out, RenderConditional(WarningStyle, fmt.Sprintf(format, args...)))
}

// Dim writes de-emphasized text followed by a newline. Used for
// neutral notices such as aborted confirmations.
func (t *Terminal) Dim(format string, args ...any) {
	fmt.Fprintln(t.out, RenderConditional(DimStyle, fmt.Sprintf(format, args...)))
}
