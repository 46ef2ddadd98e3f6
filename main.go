// bubbleos-lite - A small interactive command shell.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/bubbleos-lite/internal/cli"
	"github.com/jeranaias/bubbleos-lite/internal/commands"
	"github.com/jeranaias/bubbleos-lite/internal/config"
	"github.com/jeranaias/bubbleos-lite/internal/history"
	"github.com/jeranaias/bubbleos-lite/internal/platform"
	"github.com/jeranaias/bubbleos-lite/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, cfgErr := config.Load()
	if cfg == nil {
		cfg = config.Default()
	}
	config.SetGlobal(cfg)
	cli.SetColorMode(cfg.UI.Colors)

	term := cli.NewTerminal()
	if cfgErr != nil {
		term.Warn("Configuration problem: %v (using defaults)", cfgErr)
	}

	sess := session.NewManager()
	ctx := &commands.Context{
		Config:  config.Global(),
		History: history.New(cfg.History.Limit),
		Term:    term,
		Session: sess,
	}
	exiting := false
	ctx.RequestExit = func() { exiting = true }
	dispatcher := commands.NewDispatcher(ctx)

	printBanner(term)

	if cli.IsTTY() {
		runInteractive(cfg, term, dispatcher, &exiting)
	} else {
		runPiped(term, dispatcher, &exiting)
	}

	printExitSummary(term, sess)
	return 0
}

func printBanner(term *cli.Terminal) {
	term.Println(cli.RenderConditional(cli.TitleStyle, "BubbleOS Lite "+commands.Version))
	term.Dim("Running on %s. Type 'help' for commands, 'exit' to leave.", platform.OSName())
}

// runInteractive is the liner-backed REPL: arrow-key editing, input
// history, Ctrl+C aborting the prompt instead of killing the process.
func runInteractive(cfg *config.Config, term *cli.Terminal, dispatcher *commands.Dispatcher, exiting *bool) {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	histPath := loadInputHistory(cfg, line)
	defer saveInputHistory(line, histPath)

	prompt := cli.RenderConditional(cli.TitleStyle, cfg.General.Prompt)

	for !*exiting {
		input, err := line.Prompt(prompt)
		if err != nil {
			// Ctrl+C at the prompt and Ctrl+D both end the session
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println()
				return
			}
			term.ShowError(err)
			return
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if err := dispatcher.Dispatch(input); err != nil {
			term.ShowError(err)
		}
	}
}

// runPiped handles non-TTY stdin (scripts, pipes): plain line reads, no
// liner, no input history. No prompt either, so scripted output is not
// interleaved with prompt strings.
func runPiped(term *cli.Terminal, dispatcher *commands.Dispatcher, exiting *bool) {
	for !*exiting {
		input, err := term.ReadLine("")
		if err != nil {
			return
		}
		if err := dispatcher.Dispatch(input); err != nil {
			term.ShowError(err)
		}
	}
}

// loadInputHistory primes liner with the persisted input history, when
// enabled. Returns the history file path, or "" when persistence is off.
func loadInputHistory(cfg *config.Config, line *liner.State) string {
	if !cfg.History.PersistInput {
		return ""
	}
	path, err := config.InputHistoryPath()
	if err != nil {
		return ""
	}
	if f, openErr := os.Open(path); openErr == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	return path
}

// saveInputHistory persists liner's input history with owner-only
// permissions. Best-effort; a failed save never blocks shutdown.
func saveInputHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = line.WriteHistory(f)
}

func printExitSummary(term *cli.Terminal, sess *session.Manager) {
	st := sess.Status()
	term.Dim("Session %s: %d command(s), %d error(s), up %s.",
		st.SessionID, st.CommandsRun, st.ErrorsSeen, st.Uptime.Truncate(time.Second))
	term.Println("Goodbye!")
}
