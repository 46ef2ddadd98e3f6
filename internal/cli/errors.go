// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error display for the bubbleos shell.
//
// STANDARDIZED PATTERN:
//   - Handlers ALWAYS return errors (never just print and return nil)
//   - The dispatcher displays them through ShowError
//   - Catalog reports render as a single user-facing sentence;
//     anything else is surfaced as a fatal error with its raw message

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
)

// ShowError renders err on the Terminal's error stream.
//
// A *errdefs.Report prints its message in the error style. Any other
// error is outside the catalog and prints with a fatal prefix so the
// raw cause is never hidden from the user.
func (t *Terminal) ShowError(err error) {
	if err == nil {
		return
	}

	var report *errdefs.Report
	if errors.As(err, &report) {
		fmt.Fprintln(t.err, RenderConditional(ErrorStyle, report.Message))
		return
	}

	fmt.Fprintln(t.err, RenderConditional(ErrorStyle, errdefs.Fatal(err).Message))
}
