// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Rich terminal rendering for readfile: markdown through
// glamour, everything else through chroma when a lexer matches. Both are
// best-effort; callers fall back to plain output.

package commands

import (
	"bytes"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/bubbleos-lite/internal/cli"
)

// renderMarkdown renders markdown content for terminal display.
func renderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cli.GetTerminalWidth()),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// highlightSource returns content with ANSI syntax highlighting when a
// chroma lexer matches the file name. ok is false when no lexer matched or
// highlighting failed.
func highlightSource(path, content string) (string, bool) {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return "", false
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", false
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, styles.Get("monokai"), iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}
