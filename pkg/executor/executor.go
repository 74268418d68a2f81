package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// ExitError reports a command that started successfully but exited
// non-zero. Stderr is kept so callers can tell a real failure apart
// from exiftool's minor-warning exit codes.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command '%s' exited with code %d: %s", e.Name, e.Code, e.Stderr)
	}
	return fmt.Sprintf("command '%s' exited with code %d", e.Name, e.Code)
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return e.run(ctx, "", name, args...)
}

// ExecuteInDir runs an external command in a specific working directory
func (e *implExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return e.run(ctx, dir, name, args...)
}

func (e *implExecutor) run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Keep stdout: exiftool prints per-file diagnostics there
			// even when it exits non-zero.
			return stdout.String(), &ExitError{
				Name:   name,
				Code:   exitErr.ExitCode(),
				Stderr: stderrStr,
			}
		}

		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.String(), nil
}
