// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// handlers_dir.go - Directory-oriented commands: mkdir, list, cd, cwd.

package commands

import (
	"os"

	"github.com/jeranaias/bubbleos-lite/internal/cli"
	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
	"github.com/jeranaias/bubbleos-lite/internal/util"
)

func cmdMkdir(ctx *Context, args []string) error {
	args, silent := ExtractSilenceFlag(args)
	if len(args) < 1 {
		return errdefs.MissingArgument("a directory name", "mkdir projects")
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}

	if err := os.Mkdir(path, 0755); err != nil {
		return errdefs.Classify(errdefs.Op{Verb: "create", Subject: "directory"}, path, err)
	}

	ctx.success(silent, "Created the directory '%s'.", path)
	return nil
}

func cmdList(ctx *Context, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	path, err := ctx.resolvePath(dir)
	if err != nil {
		return err
	}

	entries, readErr := os.ReadDir(path)
	if readErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "list", Subject: "directory"}, path, readErr)
	}
	if len(entries) == 0 {
		ctx.Term.Dim("The directory '%s' is empty.", path)
		return nil
	}

	// Absurdly long names would blow out the whole column; cut them.
	const maxNameRunes = 48

	maxw := 0
	for _, e := range entries {
		w := util.StringWidth(util.TruncateRunes(e.Name(), maxNameRunes))
		if e.IsDir() {
			w++ // trailing slash
		}
		if w > maxw {
			maxw = w
		}
	}

	for _, e := range entries {
		display := util.TruncateRunes(e.Name(), maxNameRunes)
		if e.IsDir() {
			name := cli.RenderConditional(cli.HighlightStyle, util.PadWidth(display+"/", maxw))
			ctx.Term.Printf("%s  %s\n", name, cli.RenderConditional(cli.DimStyle, "<DIR>"))
			continue
		}
		size := "?"
		if info, infoErr := e.Info(); infoErr == nil {
			size = util.FormatSize(info.Size())
		}
		ctx.Term.Printf("%s  %s\n", util.PadWidth(display, maxw), cli.RenderConditional(cli.DimStyle, size))
	}
	return nil
}

func cmdCd(ctx *Context, args []string) error {
	if len(args) < 1 {
		return errdefs.MissingArgument("a directory", "cd projects")
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}

	if err := os.Chdir(path); err != nil {
		return errdefs.Classify(errdefs.Op{Verb: "change into", Subject: "directory"}, path, err)
	}
	return nil
}

func cmdCwd(ctx *Context, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return errdefs.Fatal(err)
	}
	ctx.Term.Println(wd)
	return nil
}
