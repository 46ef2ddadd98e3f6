// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// handlers_sys.go - System and session commands: help, cls, config, date,
// time, tips, about, sysinfo, history, taskkill, exit.

package commands

import (
	"errors"
	"io/fs"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/bubbleos-lite/internal/cli"
	"github.com/jeranaias/bubbleos-lite/internal/config"
	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
	"github.com/jeranaias/bubbleos-lite/internal/platform"
)

// Version is the shell's release version, shown by about and sysinfo.
const Version = "1.0.0"

func cmdHelp(ctx *Context, args []string) error {
	ctx.Term.Println(cli.RenderConditional(cli.TitleStyle, "BubbleOS Lite commands"))
	ctx.Term.Println(cli.RenderSeparator(40))
	for _, b := range Table() {
		ctx.Term.Printf("  %s%s\n", cli.RenderLabel(b.Usage, 30), b.Description)
	}
	ctx.Term.Dim("Commands marked [-s] accept a trailing -s flag that suppresses the success message.")
	return nil
}

func cmdCls(ctx *Context, args []string) error {
	if cli.IsStdoutTTY() {
		ctx.Term.Printf("\x1b[2J\x1b[H")
	}
	return nil
}

func cmdDate(ctx *Context, args []string) error {
	ctx.Term.Println(time.Now().Format("Monday, January 2, 2006"))
	return nil
}

func cmdTime(ctx *Context, args []string) error {
	ctx.Term.Println(time.Now().Format("15:04:05"))
	return nil
}

func cmdTips(ctx *Context, args []string) error {
	tips := []string{
		"Quote an argument with double quotes to include spaces: fif notes.txt \"two words\"",
		"Add -s to mkfile, mkdir, copy, del, rename, or symlink to skip the success message.",
		"history 3 re-shows the third command you typed this session.",
		"In the editor, !SAVE writes the file, !CANCEL throws the buffer away, !EDIT fixes a line.",
	}
	for _, tip := range tips {
		ctx.Term.Dim("%s", cli.WrapText(tip, 0))
	}
	return nil
}

func cmdAbout(ctx *Context, args []string) error {
	ctx.Term.Println(cli.RenderConditional(cli.TitleStyle, "BubbleOS Lite "+Version))
	ctx.Term.Println("A small interactive shell: one line in, one filesystem or OS action out.")
	ctx.Term.Printf("Running on %s.\n", platform.OSName())
	return nil
}

func cmdSysinfo(ctx *Context, args []string) error {
	ctx.Term.Printf("%s%s\n", cli.RenderLabel("OS:"), platform.OSName())
	ctx.Term.Printf("%s%s\n", cli.RenderLabel("Architecture:"), runtime.GOARCH)
	ctx.Term.Printf("%s%s\n", cli.RenderLabel("Go runtime:"), runtime.Version())
	ctx.Term.Printf("%s%d columns\n", cli.RenderLabel("Terminal:"), cli.GetTerminalWidth())
	if ctx.Session != nil {
		st := ctx.Session.Status()
		ctx.Term.Printf("%s%s\n", cli.RenderLabel("Session ID:"), st.SessionID)
		ctx.Term.Printf("%s%s\n", cli.RenderLabel("Uptime:"), st.Uptime.Truncate(time.Second))
		ctx.Term.Printf("%s%d (%d failed)\n", cli.RenderLabel("Commands run:"), st.CommandsRun, st.ErrorsSeen)
	}
	return nil
}

// cmdConfig shows the active settings, or persists them with "save".
func cmdConfig(ctx *Context, args []string) error {
	if len(args) > 0 {
		if args[0] != "save" {
			return errdefs.MissingArgument("the subcommand 'save'", "config save")
		}
		if err := config.Save(ctx.Config); err != nil {
			return errdefs.Fatal(err)
		}
		ctx.Term.Success("Saved the current settings.")
		return nil
	}

	limit := "unlimited"
	if ctx.Config.History.Limit > 0 {
		limit = strconv.Itoa(ctx.Config.History.Limit)
	}

	ctx.Term.Printf("%s%q\n", cli.RenderLabel("Prompt:"), ctx.Config.General.Prompt)
	ctx.Term.Printf("%s%t\n", cli.RenderLabel("Silent:"), ctx.Config.General.Silent)
	ctx.Term.Printf("%s%s\n", cli.RenderLabel("Colors:"), ctx.Config.UI.Colors)
	ctx.Term.Printf("%s%t\n", cli.RenderLabel("Persist input:"), ctx.Config.History.PersistInput)
	ctx.Term.Printf("%s%s\n", cli.RenderLabel("History limit:"), limit)
	if path, err := config.ConfigPathTOML(); err == nil {
		ctx.Term.Dim("Settings file: %s ('config save' writes it).", path)
	}
	return nil
}

func cmdHistory(ctx *Context, args []string) error {
	if ctx.History == nil || ctx.History.Len() == 0 {
		ctx.Term.Dim("History is empty.")
		return nil
	}

	if len(args) == 0 {
		for i, entry := range ctx.History.All() {
			ctx.Term.Printf("%s %s\n", cli.RenderConditional(cli.DimStyle, strconv.Itoa(i+1)+":"), entry)
		}
		return nil
	}

	if n, convErr := strconv.Atoi(args[0]); convErr == nil {
		entry, atErr := ctx.History.At(n)
		if atErr != nil {
			return errdefs.InvalidLineNumber(n, ctx.History.Len())
		}
		ctx.Term.Println(entry)
		return nil
	}

	needle := strings.Join(args, " ")
	matches := ctx.History.Filter(needle)
	if len(matches) == 0 {
		ctx.Term.Dim("No history entries contain '%s'.", needle)
		return nil
	}
	for _, entry := range matches {
		ctx.Term.Println(entry)
	}
	return nil
}

func cmdTaskkill(ctx *Context, args []string) error {
	if len(args) < 1 {
		return errdefs.MissingArgument("a process ID or name", "taskkill 4242")
	}
	ident := args[0]

	if pid, convErr := strconv.Atoi(ident); convErr == nil {
		if err := platform.KillPID(pid); err != nil {
			return classifyKillError(ident, err)
		}
		ctx.Term.Success("Terminated process %d.", pid)
		return nil
	}

	count, err := platform.KillByName(ident)
	if err != nil {
		return classifyKillError(ident, err)
	}
	ctx.Term.Success("Terminated %d process(es) named '%s'.", count, ident)
	return nil
}

func classifyKillError(ident string, err error) error {
	switch {
	case errors.Is(err, platform.ErrProcessNotFound):
		return errdefs.NoSuchProcess(ident)
	case errors.Is(err, fs.ErrPermission):
		return errdefs.NoPermissions("terminate", ident)
	default:
		return errdefs.Fatal(err)
	}
}

func cmdExit(ctx *Context, args []string) error {
	// Shutdown belongs to the owning loop, not the handler
	if ctx.RequestExit != nil {
		ctx.RequestExit()
	}
	return nil
}
