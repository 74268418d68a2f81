package executor

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	ctx := context.Background()
	exec := New()

	out, err := exec.Execute(ctx, "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() output = %q, want %q", out, "hello")
	}
}

func TestExecuteExitError(t *testing.T) {
	ctx := context.Background()
	exec := New()

	out, err := exec.Execute(ctx, "sh", "-c", "echo partial; echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should return error for non-zero exit")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
	if exitErr.Stderr != "oops" {
		t.Errorf("Stderr = %q, want %q", exitErr.Stderr, "oops")
	}
	if strings.TrimSpace(out) != "partial" {
		t.Errorf("stdout = %q, want preserved output", out)
	}
}

func TestExecuteMissingBinary(t *testing.T) {
	ctx := context.Background()
	exec := New()

	_, err := exec.Execute(ctx, "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("Execute() should return error for missing binary")
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Error("missing binary should not be reported as *ExitError")
	}
}

func TestExecuteInDir(t *testing.T) {
	ctx := context.Background()
	exec := New()
	dir := t.TempDir()

	out, err := exec.ExecuteInDir(ctx, dir, "pwd")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if filepath.Base(strings.TrimSpace(out)) != filepath.Base(dir) {
		t.Errorf("ExecuteInDir() pwd = %q, want inside %q", out, dir)
	}
}
