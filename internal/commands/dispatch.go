// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// dispatch.go - Prefix dispatch over the ordered command table.

package commands

import (
	"strings"

	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
)

// Dispatcher routes raw input lines to handlers. It owns the history log:
// every non-empty line is recorded as typed, whether or not it matched a
// command or the command succeeded.
type Dispatcher struct {
	ctx   *Context
	table []Binding
}

// NewDispatcher builds a dispatcher over the built-in command table.
func NewDispatcher(ctx *Context) *Dispatcher {
	return &Dispatcher{ctx: ctx, table: Table()}
}

// NewDispatcherWithTable builds a dispatcher over a custom table. Used by
// tests to exercise ordering behavior.
func NewDispatcherWithTable(ctx *Context, table []Binding) *Dispatcher {
	return &Dispatcher{ctx: ctx, table: table}
}

// Table returns the dispatch table in match-priority order.
func (d *Dispatcher) Table() []Binding {
	return d.table
}

// Dispatch routes one raw input line. The returned error is always either
// nil or a *errdefs.Report ready for display; the session never aborts on a
// command failure.
func (d *Dispatcher) Dispatch(raw string) error {
	line := strings.TrimSpace(raw)

	// Empty input is reported but never recorded.
	if line == "" {
		return errdefs.NoCommand()
	}

	if d.ctx.History != nil {
		d.ctx.History.Append(line)
	}

	err := d.run(line)
	if d.ctx.Session != nil {
		d.ctx.Session.RecordCommand(err != nil)
	}
	return err
}

// run finds the first table entry whose prefix literally starts the line
// and invokes its handler.
func (d *Dispatcher) run(line string) error {
	for i := range d.table {
		b := &d.table[i]
		if !strings.HasPrefix(line, b.Prefix) {
			continue
		}

		if b.NoArgs {
			return b.Handler(d.ctx, nil)
		}

		rest := line[len(b.Prefix):]
		return b.Handler(d.ctx, SplitArgs(rest))
	}

	return errdefs.UnrecognizedCommand(line)
}
