// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument extraction for dispatched commands.
//
// This is deliberately not a shell tokenizer. The only quoting rule is a
// single pair of double quotes grouping one argument; no single quotes,
// no nesting, no escapes.

package commands

import "strings"

// SplitArgs splits the text after a matched prefix into whitespace-delimited
// arguments. One double-quoted span is honored so an argument may contain
// spaces; the quotes themselves are stripped.
func SplitArgs(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	open := strings.IndexByte(input, '"')
	if open < 0 {
		return strings.Fields(input)
	}
	end := strings.IndexByte(input[open+1:], '"')
	if end < 0 {
		// Unbalanced quote, treat it as a literal character
		return strings.Fields(input)
	}
	end += open + 1

	var args []string
	args = append(args, strings.Fields(input[:open])...)
	args = append(args, input[open+1:end])
	args = append(args, strings.Fields(input[end+1:])...)
	return args
}

// ExtractSilenceFlag strips a trailing -s flag from the argument list.
// Returns the remaining arguments and whether the flag was present.
func ExtractSilenceFlag(args []string) ([]string, bool) {
	if n := len(args); n > 0 && args[n-1] == "-s" {
		return args[:n-1], true
	}
	return args, false
}
