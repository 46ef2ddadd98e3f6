// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// handlers_file.go - File-oriented commands: mkfile, readfile, copy, del,
// rename, size, symlink. Each follows the same shape: validate arguments,
// resolve the path, check preconditions, perform one OS action, report.

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/bubbleos-lite/internal/cli"
	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
	"github.com/jeranaias/bubbleos-lite/internal/util"
)

// maxReadfileBytes caps what readfile will print to the terminal.
const maxReadfileBytes = 1 << 20

// requireParent verifies that the directory meant to contain path exists,
// so a create reports the missing directory instead of a confusing message
// about the file itself.
func requireParent(path string) error {
	parent := filepath.Dir(path)
	if _, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			return errdefs.NonExistent("directory", parent)
		}
		return errdefs.Classify(errdefs.Op{Verb: "access", Subject: "directory"}, parent, err)
	}
	return nil
}

func cmdMkfile(ctx *Context, args []string) error {
	args, silent := ExtractSilenceFlag(args)
	if len(args) < 1 {
		return errdefs.MissingArgument("a file name", "mkfile notes.txt")
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}
	if err := requireParent(path); err != nil {
		return err
	}

	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return errdefs.AlreadyExists("directory", path)
		}
		if !ctx.Term.Confirm(fmt.Sprintf("'%s' already exists. Overwrite it?", path)) {
			ctx.Term.Dim("Aborted. '%s' was not changed.", path)
			return nil
		}
	}

	if err := os.WriteFile(path, nil, 0644); err != nil {
		return errdefs.Classify(errdefs.Op{Verb: "create", Subject: "file"}, path, err)
	}
	ctx.success(silent, "Created the file '%s'.", path)
	return nil
}

func cmdReadfile(ctx *Context, args []string) error {
	if len(args) < 1 {
		return errdefs.MissingArgument("a file name", "readfile notes.txt")
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "read", Subject: "file"}, path, statErr)
	}
	if info.IsDir() {
		return errdefs.ExpectedFile(path)
	}
	if info.Size() > maxReadfileBytes {
		ctx.Term.Warn("'%s' is %s, too large to display. Use 'size' or an external viewer.",
			path, util.FormatSize(info.Size()))
		return nil
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "read", Subject: "file"}, path, readErr)
	}
	content := string(data)

	if cli.ColorsEnabled() {
		if strings.EqualFold(filepath.Ext(path), ".md") {
			if out, mdErr := renderMarkdown(content); mdErr == nil {
				ctx.Term.Printf("%s", out)
				return nil
			}
		} else if out, ok := highlightSource(path, content); ok {
			ctx.Term.Printf("%s\n", strings.TrimRight(out, "\n"))
			return nil
		}
	}

	ctx.Term.Printf("%s\n", strings.TrimRight(content, "\n"))
	return nil
}

func cmdCopy(ctx *Context, args []string) error {
	args, silent := ExtractSilenceFlag(args)
	if len(args) < 2 {
		return errdefs.MissingArgument("a source and a destination", "copy notes.txt backup.txt")
	}
	src, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}
	dst, err := ctx.resolvePath(args[1])
	if err != nil {
		return err
	}

	srcInfo, statErr := os.Stat(src)
	if statErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "copy", Subject: "source"}, src, statErr)
	}

	if _, dstErr := os.Stat(dst); dstErr == nil {
		if srcInfo.IsDir() {
			// Recursive copies never merge into an existing destination
			return errdefs.AlreadyExists("destination", dst)
		}
		if !ctx.Term.Confirm(fmt.Sprintf("'%s' already exists. Overwrite it?", dst)) {
			ctx.Term.Dim("Aborted. '%s' was not changed.", dst)
			return nil
		}
	}

	if srcInfo.IsDir() {
		if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
			return errdefs.Classify(errdefs.Op{Verb: "copy", Subject: "directory"}, dst, err)
		}
	} else {
		data, readErr := os.ReadFile(src)
		if readErr != nil {
			return errdefs.Classify(errdefs.Op{Verb: "copy", Subject: "source"}, src, readErr)
		}
		if err := util.AtomicWriteFile(dst, data, 0644); err != nil {
			return errdefs.Classify(errdefs.Op{Verb: "copy", Subject: "file"}, dst, err)
		}
	}

	ctx.success(silent, "Copied '%s' to '%s'.", src, dst)
	return nil
}

func cmdDel(ctx *Context, args []string) error {
	args, silent := ExtractSilenceFlag(args)
	if len(args) < 1 {
		return errdefs.MissingArgument("a path to delete", "del old.txt")
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "delete", Subject: "path"}, path, statErr)
	}

	if !ctx.Term.Confirm(fmt.Sprintf("Permanently delete '%s'?", path)) {
		ctx.Term.Dim("Aborted. '%s' was not deleted.", path)
		return nil
	}

	subject := "file"
	rm := os.Remove
	if info.IsDir() {
		subject = "directory"
		rm = os.RemoveAll
	}
	if err := rm(path); err != nil {
		return errdefs.Classify(errdefs.Op{Verb: "delete", Subject: subject}, path, err)
	}

	ctx.success(silent, "Deleted '%s'.", path)
	return nil
}

func cmdRename(ctx *Context, args []string) error {
	args, silent := ExtractSilenceFlag(args)
	if len(args) < 2 {
		return errdefs.MissingArgument("the current and the new name", "rename old.txt new.txt")
	}
	oldPath, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}
	newPath, err := ctx.resolvePath(args[1])
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(oldPath); statErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "rename", Subject: "source"}, oldPath, statErr)
	}
	if _, statErr := os.Stat(newPath); statErr == nil {
		if !ctx.Term.Confirm(fmt.Sprintf("'%s' already exists. Overwrite it?", newPath)) {
			ctx.Term.Dim("Aborted. '%s' was not renamed.", oldPath)
			return nil
		}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return errdefs.Classify(errdefs.Op{Verb: "rename", Subject: "path"}, newPath, err)
	}

	ctx.success(silent, "Renamed '%s' to '%s'.", oldPath, newPath)
	return nil
}

func cmdSize(ctx *Context, args []string) error {
	if len(args) < 1 {
		return errdefs.MissingArgument("a file name", "size notes.txt")
	}
	path, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "measure", Subject: "file"}, path, statErr)
	}
	if info.IsDir() {
		return errdefs.ExpectedFile(path)
	}

	ctx.Term.Printf("'%s' is %s.\n", path, util.FormatSize(info.Size()))
	return nil
}

func cmdSymlink(ctx *Context, args []string) error {
	args, silent := ExtractSilenceFlag(args)
	if len(args) < 2 {
		return errdefs.MissingArgument("a target and a link name", "symlink notes.txt notes-link")
	}
	target, err := ctx.resolvePath(args[0])
	if err != nil {
		return err
	}
	link, err := ctx.resolvePath(args[1])
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(target); statErr != nil {
		return errdefs.Classify(errdefs.Op{Verb: "link to", Subject: "target"}, target, statErr)
	}

	if err := os.Symlink(target, link); err != nil {
		return errdefs.Classify(errdefs.Op{Verb: "create", Subject: "link"}, link, err)
	}

	ctx.success(silent, "Created the symlink '%s' pointing at '%s'.", link, target)
	return nil
}
