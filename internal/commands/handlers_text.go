// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// handlers_text.go - Text-oriented commands: fif, wcount, edit, print.

package commands

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/bubbleos-lite/internal/cli"
	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
	"github.com/jeranaias/bubbleos-lite/internal/util"
)

func cmdFif(ctx *Context, args []string) error {
	if len(args) < 2 {
		return errdefs.MissingArgument("a file and a phrase", `fif notes.txt "hello world"`)
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}
	phrase := args[1]

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "search", Subject: "file"}, path, readErr)
	}

	total := 0
	var hits []string
	for i, line := range strings.Split(string(data), "\n") {
		if c := strings.Count(line, phrase); c > 0 {
			total += c
			hits = append(hits, fmt.Sprintf("%d", i+1))
		}
	}

	if total == 0 {
		ctx.Term.Dim("No occurrences of '%s' in '%s'.", phrase, path)
		return nil
	}
	ctx.Term.Printf("%d occurrence(s) of '%s' on line(s) %s.\n",
		total, phrase, strings.Join(hits, ", "))
	return nil
}

func cmdWcount(ctx *Context, args []string) error {
	if len(args) < 1 {
		return errdefs.MissingArgument("a file name", "wcount notes.txt")
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "count", Subject: "file"}, path, readErr)
	}
	content := string(data)

	ctx.Term.Printf("%s%d\n", cli.RenderLabel("Lines:", 12), util.CountLines(content))
	ctx.Term.Printf("%s%d\n", cli.RenderLabel("Words:", 12), len(strings.Fields(content)))
	ctx.Term.Printf("%s%d\n", cli.RenderLabel("Characters:", 12), utf8.RuneCountInString(content))
	return nil
}

func cmdEdit(ctx *Context, args []string) error {
	if len(args) < 1 {
		return errdefs.MissingArgument("a file name", "edit notes.txt")
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}
	if err := requireParent(path); err != nil {
		return err
	}
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return errdefs.ExpectedFile(path)
	}

	return runEditor(ctx, path)
}

func cmdPrint(ctx *Context, args []string) error {
	ctx.Term.Println(strings.Join(args, " "))
	return nil
}
