package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/logan/internal/domain"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolvePath(t *testing.T) {
	exec := NewLocalExecutor("/root/actions", 0, nil)
	tests := []struct {
		name   string
		action domain.ActionDefinition
		want   string
	}{
		{name: "no context", action: domain.ActionDefinition{Path: "create_file.sh"}, want: "/root/actions/create_file.sh"},
		{name: "with context", action: domain.ActionDefinition{Context: "linux", Path: "ls.sh"}, want: "/root/actions/linux/ls.sh"},
		{name: "nested path", action: domain.ActionDefinition{Context: "aws", Path: "ssh/goto.sh"}, want: "/root/actions/aws/ssh/goto.sh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exec.ResolvePath(tt.action); got != filepath.FromSlash(tt.want) {
				t.Fatalf("ResolvePath() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBuildInvocation(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, filepath.Join(dir, "usr"), "ls.sh", `ls "$@"`)
	exec := NewLocalExecutor(dir, 0, nil)

	inv, err := exec.BuildInvocation(domain.ActionDefinition{Key: "list:files", Context: "usr", Path: "ls.sh"}, "-l  -t\t-r")
	if err != nil {
		t.Fatalf("BuildInvocation() error = %v", err)
	}
	want := domain.Invocation{Path: script, Args: []string{"-l", "-t", "-r"}}
	if diff := cmp.Diff(want, inv); diff != "" {
		t.Fatalf("BuildInvocation() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInvocationMissingPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "folder.sh"), 0o755); err != nil {
		t.Fatal(err)
	}
	exec := NewLocalExecutor(dir, 0, nil)

	tests := []struct {
		name   string
		action domain.ActionDefinition
	}{
		{name: "missing file", action: domain.ActionDefinition{Key: "create:file", Path: "nope.sh"}},
		{name: "directory", action: domain.ActionDefinition{Key: "create:file", Path: "folder.sh"}},
		{name: "empty path", action: domain.ActionDefinition{Key: "create:file"}},
		{name: "missing context dir", action: domain.ActionDefinition{Key: "create:file", Context: "linux", Path: "folder.sh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := exec.BuildInvocation(tt.action, "file.txt")
			if !errors.Is(err, domain.ErrActionPathMissing) {
				t.Fatalf("expected ErrActionPathMissing, got %v", err)
			}
		})
	}
}

func TestExecuteCapturesOutput(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "echo.sh", `echo "out:$1"; echo "err:$2" >&2`)
	exec := NewLocalExecutor(dir, 0, nil)

	res, err := exec.Execute(context.Background(), domain.Invocation{Path: script, Args: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.ExitCode != 0 || res.Stdout != "out:a\n" || res.Stderr != "err:b\n" || !res.Succeeded() {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestExecuteReportsNonZeroExit(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "fail.sh", `echo "bad input" >&2; exit 3`)
	exec := NewLocalExecutor(dir, 0, nil)

	res, err := exec.Execute(context.Background(), domain.Invocation{Path: script})
	if err != nil {
		t.Fatalf("non-zero exit must not be an error, got %v", err)
	}
	if res.ExitCode != 3 || res.Stderr != "bad input\n" || res.Succeeded() {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestExecuteDoesNotUseShellForArgs(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "args.sh", `printf '%s\n' "$@"`)
	exec := NewLocalExecutor(dir, 0, nil)

	res, err := exec.Execute(context.Background(), domain.Invocation{Path: script, Args: []string{"$HOME", "*", ";ls"}})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Stdout != "$HOME\n*\n;ls\n" {
		t.Fatalf("arguments were expanded: %q", res.Stdout)
	}
}

func TestExecuteUnrunnableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, []byte("not executable"), 0o644); err != nil {
		t.Fatal(err)
	}
	exec := NewLocalExecutor(dir, 0, nil)

	res, err := exec.Execute(context.Background(), domain.Invocation{Path: path})
	if err == nil {
		t.Fatal("expected spawn error")
	}
	if res.ExitCode != domain.ExitFail {
		t.Fatalf("expected exit code %d, got %d", domain.ExitFail, res.ExitCode)
	}
}

func TestExecuteTimeout(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "sleep.sh", `exec sleep 5`)
	exec := NewLocalExecutor(dir, 50*time.Millisecond, nil)

	res, err := exec.Execute(context.Background(), domain.Invocation{Path: script})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.ExitCode != domain.TimeoutExitCode || !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestExecuteTimeoutKillsScriptChildren(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "wait.sh", "sleep 5\necho finished")
	exec := NewLocalExecutor(dir, 50*time.Millisecond, nil)

	start := time.Now()
	res, err := exec.Execute(context.Background(), domain.Invocation{Path: script})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("Execute() returned after %s, child outlived the timeout", elapsed)
	}
	if res.ExitCode != domain.TimeoutExitCode || !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Fatalf("unexpected result %+v", res)
	}
}
