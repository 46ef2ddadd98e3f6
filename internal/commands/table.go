// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// table.go - The ordered command table.
//
// Matching is by literal string prefix, not tokens, so declaration order is
// the collision policy: an entry whose prefix contains another entry's
// prefix must be declared before it. Tests assert this ordering invariant.

package commands

// Handler executes one command with its extracted arguments.
type Handler func(ctx *Context, args []string) error

// Binding ties a command prefix to its handler and help metadata.
type Binding struct {
	// Prefix is the literal string the input line must start with
	Prefix string

	// Usage shows argument syntax (e.g. "mkfile <file> [-s]")
	Usage string

	// Description is shown by the help command
	Description string

	// NoArgs marks pure side-effecting commands that bypass argument
	// extraction entirely
	NoArgs bool

	// Handler executes the command
	Handler Handler
}

// Table returns the command table in match-priority order.
func Table() []Binding {
	return []Binding{
		// "history" must precede nothing, but "help" and "history" share no
		// prefix; the mk*, read*/rename, and s* groups are ordered longest
		// prefix first where they collide.
		{Prefix: "help", Usage: "help", Description: "List all commands.", NoArgs: true, Handler: cmdHelp},
		{Prefix: "history", Usage: "history [n|text]", Description: "Show the session command history, one entry by number, or entries containing text.", Handler: cmdHistory},
		{Prefix: "cls", Usage: "cls", Description: "Clear the screen.", NoArgs: true, Handler: cmdCls},
		{Prefix: "cwd", Usage: "cwd", Description: "Print the current working directory.", NoArgs: true, Handler: cmdCwd},
		{Prefix: "cd", Usage: "cd <dir>", Description: "Change the working directory.", Handler: cmdCd},
		{Prefix: "config", Usage: "config [save]", Description: "Show the active settings, or save them with 'save'.", Handler: cmdConfig},
		{Prefix: "copy", Usage: "copy <source> <destination> [-s]", Description: "Copy a file or directory.", Handler: cmdCopy},
		{Prefix: "date", Usage: "date", Description: "Print today's date.", NoArgs: true, Handler: cmdDate},
		{Prefix: "del", Usage: "del <path> [-s]", Description: "Delete a file or directory.", Handler: cmdDel},
		{Prefix: "edit", Usage: "edit <file>", Description: "Open the interactive content editor.", Handler: cmdEdit},
		{Prefix: "exit", Usage: "exit", Description: "Leave the shell.", NoArgs: true, Handler: cmdExit},
		{Prefix: "fif", Usage: "fif <file> <phrase>", Description: "Find a phrase in a file.", Handler: cmdFif},
		{Prefix: "list", Usage: "list [dir]", Description: "List the contents of a directory.", Handler: cmdList},
		{Prefix: "mkfile", Usage: "mkfile <file> [-s]", Description: "Create an empty file.", Handler: cmdMkfile},
		{Prefix: "mkdir", Usage: "mkdir <dir> [-s]", Description: "Create a directory.", Handler: cmdMkdir},
		{Prefix: "print", Usage: "print <text>", Description: "Print text to the screen.", Handler: cmdPrint},
		{Prefix: "readfile", Usage: "readfile <file>", Description: "Print the contents of a file.", Handler: cmdReadfile},
		{Prefix: "rename", Usage: "rename <old> <new> [-s]", Description: "Rename or move a file or directory.", Handler: cmdRename},
		{Prefix: "symlink", Usage: "symlink <target> <link> [-s]", Description: "Create a symbolic link.", Handler: cmdSymlink},
		{Prefix: "sysinfo", Usage: "sysinfo", Description: "Show system and session information.", NoArgs: true, Handler: cmdSysinfo},
		{Prefix: "size", Usage: "size <file>", Description: "Show the size of a file.", Handler: cmdSize},
		{Prefix: "taskkill", Usage: "taskkill <pid|name>", Description: "Terminate a process by PID or name.", Handler: cmdTaskkill},
		{Prefix: "tips", Usage: "tips", Description: "Show usage tips.", NoArgs: true, Handler: cmdTips},
		{Prefix: "time", Usage: "time", Description: "Print the current time.", NoArgs: true, Handler: cmdTime},
		{Prefix: "wcount", Usage: "wcount <file>", Description: "Count lines, words, and characters in a file.", Handler: cmdWcount},
		{Prefix: "about", Usage: "about", Description: "About this shell.", NoArgs: true, Handler: cmdAbout},
	}
}
