// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/bubbleos-lite/internal/config"
	"github.com/jeranaias/bubbleos-lite/internal/errdefs"
)

func TestMkfileCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	ctx, out, _ := newTestContext("")

	if err := cmdMkfile(ctx, []string{path}); err != nil {
		t.Fatalf("cmdMkfile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file was not created: %v", err)
	}
	if !strings.Contains(out.String(), "Created the file") {
		t.Errorf("out = %q, want success line", out.String())
	}
}

func TestMkfileSilenceFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.txt")
	ctx, out, _ := newTestContext("")

	if err := cmdMkfile(ctx, []string{path, "-s"}); err != nil {
		t.Fatalf("cmdMkfile: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("out = %q, want -s to suppress the success line", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("-s must not suppress the action itself")
	}
}

func TestMkfileMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "new.txt")
	ctx, _, _ := newTestContext("")

	err := cmdMkfile(ctx, []string{path})
	if !errdefs.IsKind(err, errdefs.CodeNonExistent) {
		t.Errorf("err = %v, want non-existent report, not a fatal error", err)
	}
}

func TestMkfileSilenceFlagDoesNotHideErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "new.txt")
	ctx, _, _ := newTestContext("")

	err := cmdMkfile(ctx, []string{path, "-s"})
	if !errdefs.IsKind(err, errdefs.CodeNonExistent) {
		t.Errorf("err = %v, want the failure reported even under -s", err)
	}
}

func TestMkfileDeclineOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.txt")
	if err := os.WriteFile(path, []byte("precious"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, out, _ := newTestContext("n\n")
	if err := cmdMkfile(ctx, []string{path}); err != nil {
		t.Fatalf("declining must not be an error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "precious" {
		t.Errorf("file = %q, want original contents untouched", data)
	}
	if !strings.Contains(out.String(), "Aborted") {
		t.Errorf("out = %q, want a neutral abort notice", out.String())
	}
}

func TestMkfileAcceptOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.txt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("y\n")
	if err := cmdMkfile(ctx, []string{path}); err != nil {
		t.Fatalf("cmdMkfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("file = %q, want truncated empty", data)
	}
}

func TestMkfileRejectsUNC(t *testing.T) {
	ctx, _, _ := newTestContext("")
	err := cmdMkfile(ctx, []string{`\\server\share\f.txt`})
	if !errdefs.IsKind(err, errdefs.CodeUnsupportedPath) {
		t.Errorf("err = %v, want unsupported-path report", err)
	}
}

func TestMkdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")
	ctx, _, _ := newTestContext("")

	if err := cmdMkdir(ctx, []string{dir}); err != nil {
		t.Fatalf("cmdMkdir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("directory not created: %v", err)
	}

	// Second attempt classifies EEXIST
	err = cmdMkdir(ctx, []string{dir})
	if !errdefs.IsKind(err, errdefs.CodeAlreadyExists) {
		t.Errorf("err = %v, want already-exists report", err)
	}
}

func TestDelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("y\n")
	if err := cmdDel(ctx, []string{path}); err != nil {
		t.Fatalf("cmdDel: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should be gone")
	}
}

func TestDelDeclineKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stay.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("n\n")
	if err := cmdDel(ctx, []string{path}); err != nil {
		t.Fatalf("declining must not be an error, got %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("file should still exist")
	}
}

func TestDelDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "tree")
	if err := os.MkdirAll(filepath.Join(sub, "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("y\n")
	if err := cmdDel(ctx, []string{sub}); err != nil {
		t.Fatalf("cmdDel: %v", err)
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Error("directory tree should be gone")
	}
}

func TestDelNonExistent(t *testing.T) {
	ctx, _, _ := newTestContext("")
	err := cmdDel(ctx, []string{filepath.Join(t.TempDir(), "ghost")})
	if !errdefs.IsKind(err, errdefs.CodeNonExistent) {
		t.Errorf("err = %v, want non-existent report", err)
	}
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	if err := os.WriteFile(oldPath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("")
	if err := cmdRename(ctx, []string{oldPath, newPath}); err != nil {
		t.Fatalf("cmdRename: %v", err)
	}

	data, err := os.ReadFile(newPath)
	if err != nil || string(data) != "content" {
		t.Errorf("renamed file = %q, %v", data, err)
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Error("old path should be gone")
	}
}

func TestRenameDeclineOverwrite(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "a.txt")
	newPath := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(oldPath, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(newPath, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("n\n")
	if err := cmdRename(ctx, []string{oldPath, newPath}); err != nil {
		t.Fatalf("declining must not be an error, got %v", err)
	}
	data, _ := os.ReadFile(newPath)
	if string(data) != "b" {
		t.Errorf("destination = %q, want untouched", data)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("")
	if err := cmdCopy(ctx, []string{src, dst}); err != nil {
		t.Fatalf("cmdCopy: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "payload" {
		t.Errorf("copy = %q, %v", data, err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Error("source must survive a copy")
	}
}

func TestCopyDirectoryRecursive(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	if err := os.MkdirAll(filepath.Join(src, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "sub", "leaf.txt"), []byte("leaf"), 0644); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "tree-copy")
	ctx, _, _ := newTestContext("")
	if err := cmdCopy(ctx, []string{src, dst}); err != nil {
		t.Fatalf("cmdCopy: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "sub", "leaf.txt"))
	if err != nil || string(data) != "leaf" {
		t.Errorf("recursive copy = %q, %v", data, err)
	}
}

func TestCopyMissingSource(t *testing.T) {
	dir := t.TempDir()
	ctx, _, _ := newTestContext("")
	err := cmdCopy(ctx, []string{filepath.Join(dir, "ghost"), filepath.Join(dir, "dst")})
	if !errdefs.IsKind(err, errdefs.CodeNonExistent) {
		t.Errorf("err = %v, want non-existent report", err)
	}
}

func TestReadfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, out, _ := newTestContext("")
	if err := cmdReadfile(ctx, []string{path}); err != nil {
		t.Fatalf("cmdReadfile: %v", err)
	}
	if !strings.Contains(out.String(), "hello world") {
		t.Errorf("out = %q, want file contents", out.String())
	}
}

func TestReadfileOnDirectory(t *testing.T) {
	ctx, _, _ := newTestContext("")
	err := cmdReadfile(ctx, []string{t.TempDir()})
	if !errdefs.IsKind(err, errdefs.CodeExpectedFile) {
		t.Errorf("err = %v, want expected-file report", err)
	}
}

func TestSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sized.txt")
	if err := os.WriteFile(path, make([]byte, 512), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, out, _ := newTestContext("")
	if err := cmdSize(ctx, []string{path}); err != nil {
		t.Fatalf("cmdSize: %v", err)
	}
	if !strings.Contains(out.String(), "512 bytes") {
		t.Errorf("out = %q, want 512 bytes", out.String())
	}
}

func TestFif(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haystack.txt")
	content := "needle here\nnothing\nneedle needle\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, out, _ := newTestContext("")
	if err := cmdFif(ctx, []string{path, "needle"}); err != nil {
		t.Fatalf("cmdFif: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "3 occurrence(s)") {
		t.Errorf("out = %q, want 3 occurrences", got)
	}
	if !strings.Contains(got, "1, 3") {
		t.Errorf("out = %q, want line numbers 1 and 3", got)
	}
}

func TestWcount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counted.txt")
	if err := os.WriteFile(path, []byte("one two\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, out, _ := newTestContext("")
	if err := cmdWcount(ctx, []string{path}); err != nil {
		t.Fatalf("cmdWcount: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "2") || !strings.Contains(got, "3") {
		t.Errorf("out = %q, want 2 lines and 3 words", got)
	}
}

func TestSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")
	if err := os.WriteFile(target, []byte("real"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("")
	if err := cmdSymlink(ctx, []string{target, link}); err != nil {
		t.Fatalf("cmdSymlink: %v", err)
	}

	data, err := os.ReadFile(link)
	if err != nil || string(data) != "real" {
		t.Errorf("link reads %q, %v", data, err)
	}
}

func TestListShowsEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plain.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, out, _ := newTestContext("")
	if err := cmdList(ctx, []string{dir}); err != nil {
		t.Fatalf("cmdList: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "subdir/") {
		t.Errorf("out = %q, want directory marked with a slash", got)
	}
	if !strings.Contains(got, "plain.txt") || !strings.Contains(got, "1 bytes") {
		t.Errorf("out = %q, want file with its size", got)
	}
}

func TestListOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, _, _ := newTestContext("")
	err := cmdList(ctx, []string{path})
	if !errdefs.IsKind(err, errdefs.CodeExpectedDirectory) {
		t.Errorf("err = %v, want expected-directory report", err)
	}
}

func TestHistoryCommand(t *testing.T) {
	ctx, out, _ := newTestContext("")
	d := NewDispatcher(ctx)

	_ = d.Dispatch("print alpha")
	_ = d.Dispatch("print beta")

	out.Reset()
	if err := d.Dispatch("history"); err != nil {
		t.Fatalf("history: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "print alpha") || !strings.Contains(got, "print beta") {
		t.Errorf("out = %q, want both entries", got)
	}

	out.Reset()
	if err := d.Dispatch("history 1"); err != nil {
		t.Fatalf("history 1: %v", err)
	}
	if !strings.Contains(out.String(), "print alpha") {
		t.Errorf("out = %q, want first entry", out.String())
	}

	err := d.Dispatch("history 99")
	if !errdefs.IsKind(err, errdefs.CodeInvalidLineNumber) {
		t.Errorf("err = %v, want invalid-line-number report", err)
	}

	out.Reset()
	if err := d.Dispatch("history beta"); err != nil {
		t.Fatalf("history beta: %v", err)
	}
	if !strings.Contains(out.String(), "print beta") {
		t.Errorf("out = %q, want filtered entry", out.String())
	}
}

func TestTaskkillNoSuchPID(t *testing.T) {
	ctx, _, _ := newTestContext("")
	// Far above any real PID range
	err := cmdTaskkill(ctx, []string{"99999999"})
	if !errdefs.IsKind(err, errdefs.CodeNoSuchProcess) {
		t.Errorf("err = %v, want no-such-process report", err)
	}
}

func TestExitDelegates(t *testing.T) {
	called := false
	ctx, _, _ := newTestContext("")
	ctx.RequestExit = func() { called = true }

	if err := cmdExit(ctx, nil); err != nil {
		t.Fatalf("cmdExit: %v", err)
	}
	if !called {
		t.Error("exit must delegate to RequestExit")
	}
}

func TestMissingArguments(t *testing.T) {
	tests := []struct {
		name    string
		handler Handler
	}{
		{"mkfile", cmdMkfile},
		{"mkdir", cmdMkdir},
		{"edit", cmdEdit},
		{"readfile", cmdReadfile},
		{"copy", cmdCopy},
		{"del", cmdDel},
		{"rename", cmdRename},
		{"size", cmdSize},
		{"fif", cmdFif},
		{"wcount", cmdWcount},
		{"symlink", cmdSymlink},
		{"cd", cmdCd},
		{"taskkill", cmdTaskkill},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _, _ := newTestContext("")
			err := tc.handler(ctx, nil)
			if !errdefs.IsKind(err, errdefs.CodeMissingArgument) {
				t.Errorf("err = %v, want missing-argument report", err)
			}
		})
	}
}

func TestConfigShowsSettings(t *testing.T) {
	ctx, out, _ := newTestContext("")

	if err := cmdConfig(ctx, nil); err != nil {
		t.Fatalf("cmdConfig: %v", err)
	}
	for _, want := range []string{"bubble> ", "auto", "500"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q missing %q", out.String(), want)
		}
	}
}

func TestConfigShowsUnlimitedForZeroLimit(t *testing.T) {
	ctx, out, _ := newTestContext("")
	ctx.Config.History.Limit = 0

	if err := cmdConfig(ctx, nil); err != nil {
		t.Fatalf("cmdConfig: %v", err)
	}
	if !strings.Contains(out.String(), "unlimited") {
		t.Errorf("output %q should describe a zero limit as unlimited", out.String())
	}
}

func TestConfigSaveRoundTrips(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	ctx, out, _ := newTestContext("")
	ctx.Config.General.Prompt = "saved> "

	if err := cmdConfig(ctx, []string{"save"}); err != nil {
		t.Fatalf("cmdConfig save: %v", err)
	}
	if !strings.Contains(out.String(), "Saved") {
		t.Errorf("output %q missing save confirmation", out.String())
	}

	loaded, err := config.LoadFromPath(filepath.Join(home, ".bubbleos", "config.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.General.Prompt != "saved> " {
		t.Errorf("prompt = %q, want saved> ", loaded.General.Prompt)
	}
}

func TestConfigRejectsUnknownSubcommand(t *testing.T) {
	ctx, _, _ := newTestContext("")

	err := cmdConfig(ctx, []string{"reset"})
	if !errdefs.IsKind(err, errdefs.CodeMissingArgument) {
		t.Errorf("err = %v, want missing-argument report", err)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	ctx, out, _ := newTestContext("")

	if err := cmdHelp(ctx, nil); err != nil {
		t.Fatalf("cmdHelp: %v", err)
	}
	for _, b := range Table() {
		if !strings.Contains(out.String(), b.Usage) {
			t.Errorf("help output missing usage %q", b.Usage)
		}
	}
	if !strings.Contains(out.String(), "====") {
		t.Error("help output missing the separator under the title")
	}
}

func TestTipsWrapToTerminalWidth(t *testing.T) {
	ctx, out, _ := newTestContext("")

	if err := cmdTips(ctx, nil); err != nil {
		t.Fatalf("cmdTips: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if len(line) > 80 {
			t.Errorf("tip line %q exceeds the default terminal width", line)
		}
	}
}

func TestListTruncatesLongNames(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("n", 70) + ".txt"
	if err := os.WriteFile(filepath.Join(dir, long), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	ctx, out, _ := newTestContext("")

	if err := cmdList(ctx, []string{dir}); err != nil {
		t.Fatalf("cmdList: %v", err)
	}
	if strings.Contains(out.String(), long) {
		t.Error("listing should not print the full overlong name")
	}
	if !strings.Contains(out.String(), "...") {
		t.Errorf("listing %q should mark the truncation", out.String())
	}
}
