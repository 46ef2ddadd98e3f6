// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the bubbleos command table, the prefix
// dispatcher, and the ~20 built-in command handlers.
package commands

import (
	"github.com/jeranaias/bubbleos-lite/internal/cli"
	"github.com/jeranaias/bubbleos-lite/internal/config"
	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
	"github.com/jeranaias/bubbleos-lite/internal/history"
	"github.com/jeranaias/bubbleos-lite/internal/platform"
	"github.com/jeranaias/bubbleos-lite/internal/session"
)

// =============================================================================
// EXECUTION CONTEXT
// =============================================================================

// Context carries the collaborators every handler may need. One Context is
// built at startup and shared by all commands for the process lifetime.
type Context struct {
	// Config provides access to the loaded configuration
	Config *config.Config

	// History is the session command log, owned by the dispatcher
	History *history.Log

	// Term is the terminal collaborator all prompts and output go through
	Term *cli.Terminal

	// Session tracks session identity and counters
	Session *session.Manager

	// RequestExit asks the owning loop to shut the shell down. The exit
	// command delegates here instead of terminating the process itself.
	RequestExit func()
}

// resolvePath turns raw user input into an absolute, normalized,
// platform-cased path. UNC/network paths are rejected before any OS call.
func (ctx *Context) resolvePath(raw string) (string, error) {
	if platform.IsUNCPath(raw) {
		return "", errdefs.UnsupportedPath(raw)
	}
	resolved, err := platform.ResolvePath(raw)
	if err != nil {
		return "", errdefs.Fatal(err)
	}
	return resolved, nil
}

// quiet reports whether a success line should be suppressed, combining the
// per-command -s flag with the global silent setting.
func (ctx *Context) quiet(silentFlag bool) bool {
	if silentFlag {
		return true
	}
	return ctx.Config != nil && ctx.Config.General.Silent
}

// success prints a styled confirmation unless silenced.
func (ctx *Context) success(silentFlag bool, format string, args ...any) {
	if ctx.quiet(silentFlag) {
		return
	}
	ctx.Term.Success(format, args...)
}
