// Package executor runs the external tools the build pipeline shells out
// to (the go toolchain, linters, release builders) and normalizes their
// failures into a small error taxonomy: the tool is missing from PATH, or
// the tool exited non-zero. Everything else is success with captured output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// NotFoundError reports a tool that is not installed on the search path.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Name)
}

// ExitError reports a tool that ran but exited non-zero. Stderr holds the
// captured standard-error text when the command was run with capture.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Name, e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Result holds the captured output of a completed command.
type Result struct {
	Stdout string
	Stderr string
}

// Available reports whether the named tool can be found on the search path.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes a command in dir, capturing stdout and stderr. A missing
// binary yields *NotFoundError and a non-zero exit yields *ExitError with
// the captured stderr attached; neither panics or aborts the caller.
func Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, &NotFoundError{Name: name}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	runErr := cmd.Run()
	res := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return res, &ExitError{Name: name, Code: exitErr.ExitCode(), Stderr: res.Stderr}
		}
		return res, fmt.Errorf("failed to execute %s: %w", name, runErr)
	}
	return res, nil
}

// RunAttached executes a command in dir with the parent's stdio attached,
// for children whose live output belongs on the terminal (test runs,
// spawned subcommands). Exit status is mapped the same way as Run, minus
// the captured stderr.
func RunAttached(ctx context.Context, dir, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return &NotFoundError{Name: name}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if runErr := cmd.Run(); runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return &ExitError{Name: name, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to execute %s: %w", name, runErr)
	}
	return nil
}

// ExitCode extracts the machine-readable exit code from an error returned
// by Run or RunAttached. Missing tools and plain errors map to 1 so the
// process exit code stays the sole failure signal.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
