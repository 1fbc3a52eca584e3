// Package orchestrator implements the build steps behind the CLI
// subcommands: dependency install, test execution, artifact cleanup,
// binary builds, and linting. Each step is exposed both as a direct
// method and as a pipeline step for the combined run.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ocsdev/internal/clean"
	"ocsdev/internal/config"
	"ocsdev/internal/executor"
	"ocsdev/internal/pipeline"
	"ocsdev/internal/reporting"
	"ocsdev/internal/toolchain"
	"ocsdev/pkg/logging"
)

// Orchestrator runs build steps against the project in Dir.
type Orchestrator struct {
	cfg     config.Config
	dir     string
	console *reporting.Console

	// selfExecutable resolves the running binary for test re-exec.
	// Swapped in tests.
	selfExecutable func() (string, error)
}

// New creates an orchestrator for the project in dir.
func New(cfg config.Config, dir string, console *reporting.Console) *Orchestrator {
	return &Orchestrator{
		cfg:            cfg,
		dir:            dir,
		console:        console,
		selfExecutable: os.Executable,
	}
}

// Install checks the go toolchain, downloads and verifies module
// dependencies, and installs the configured dev tools.
func (o *Orchestrator) Install(ctx context.Context) error {
	o.console.Step("Installing dependencies...")
	mgr := toolchain.NewManager(o.cfg, o.dir, o.console)
	if err := mgr.CheckGo(ctx); err != nil {
		return err
	}
	if err := mgr.InstallDependencies(ctx); err != nil {
		return err
	}
	return mgr.InstallTools(ctx, o.cfg.Tools)
}

// Test runs the test suite by re-executing this binary's run-tests
// subcommand as a child process, so the suite runs with the same flag
// handling and reporting as a direct invocation. Extra args are passed
// through to run-tests verbatim.
func (o *Orchestrator) Test(ctx context.Context, extra ...string) error {
	o.console.Step("Running tests...")
	self, err := o.selfExecutable()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}
	args := append([]string{"run-tests"}, extra...)
	logging.Debug("orchestrator", "spawning %s %s", self, strings.Join(args, " "))
	if err := executor.RunAttached(ctx, o.dir, self, args...); err != nil {
		return fmt.Errorf("test suite failed: %w", err)
	}
	o.console.Success("All tests passed")
	return nil
}

// Clean removes the configured build artifacts. Missing artifacts are
// not errors; the step reports how many paths it actually removed.
func (o *Orchestrator) Clean(ctx context.Context) error {
	o.console.Step("Cleaning build artifacts...")
	removed, err := clean.Remove(o.dir, o.cfg.Clean.Patterns)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	o.console.Success("Removed %d artifact path(s)", removed)
	return nil
}

// Build produces distributable binaries: a goreleaser snapshot build
// when goreleaser is installed, otherwise a plain go build into the
// output directory. Artifacts from earlier builds are cleaned first.
func (o *Orchestrator) Build(ctx context.Context) error {
	if err := o.Clean(ctx); err != nil {
		return err
	}

	o.console.Step("Building distribution...")
	if executor.Available(o.cfg.Toolchain.ReleaseBinary) {
		err := executor.RunAttached(ctx, o.dir, o.cfg.Toolchain.ReleaseBinary, "build", "--snapshot", "--clean")
		if err == nil {
			o.console.Success("Snapshot build completed in dist/")
			return nil
		}
		o.console.Warning("%s failed (%v), falling back to go build", o.cfg.Toolchain.ReleaseBinary, err)
	} else {
		o.console.Warning("%s not found, falling back to go build", o.cfg.Toolchain.ReleaseBinary)
	}

	outDir := o.cfg.Build.OutputDir
	if err := os.MkdirAll(filepath.Join(o.dir, outDir), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	// A trailing separator makes -o a directory target, so a ./...
	// package list with multiple main packages still builds.
	args := []string{"build", "-trimpath", "-o", outDir + string(os.PathSeparator), o.cfg.Build.Packages}
	o.console.Info("Running: %s %s", o.cfg.Toolchain.GoBinary, strings.Join(args, " "))
	res, err := executor.Run(ctx, o.dir, o.cfg.Toolchain.GoBinary, args...)
	if err != nil {
		if res != nil && strings.TrimSpace(res.Stderr) != "" {
			o.console.Info("%s", strings.TrimSpace(res.Stderr))
		}
		return fmt.Errorf("go build failed: %w", err)
	}
	o.console.Success("Binaries built in %s/", outDir)
	return nil
}

// Lint runs the configured linter and a format check. Both checks run
// even when the first fails, so one pass reports everything; the step
// fails if either check did. A missing linter binary downgrades that
// half to a warning.
func (o *Orchestrator) Lint(ctx context.Context) error {
	o.console.Step("Running linters...")

	var failed []string

	if executor.Available(o.cfg.Toolchain.LintBinary) {
		if err := executor.RunAttached(ctx, o.dir, o.cfg.Toolchain.LintBinary, "run"); err != nil {
			o.console.Error("%s reported problems: %v", o.cfg.Toolchain.LintBinary, err)
			failed = append(failed, o.cfg.Toolchain.LintBinary)
		} else {
			o.console.Success("Lint passed")
		}
	} else {
		o.console.Warning("%s not found, skipping lint (go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)", o.cfg.Toolchain.LintBinary)
	}

	res, err := executor.Run(ctx, o.dir, o.cfg.Toolchain.FormatBinary, "-l", ".")
	unformatted := ""
	if res != nil {
		unformatted = strings.TrimSpace(res.Stdout)
	}
	switch {
	case err != nil:
		o.console.Error("format check failed: %v", err)
		failed = append(failed, o.cfg.Toolchain.FormatBinary)
	case unformatted != "":
		o.console.Error("Files need formatting:")
		o.console.Info("%s", unformatted)
		o.console.Info("Run '%s -w .' to fix", o.cfg.Toolchain.FormatBinary)
		failed = append(failed, o.cfg.Toolchain.FormatBinary)
	default:
		o.console.Success("Formatting clean")
	}

	if len(failed) > 0 {
		return fmt.Errorf("lint checks failed: %s", strings.Join(failed, ", "))
	}
	return nil
}

// Pipeline returns the combined sequence run by the all subcommand:
// install, test, lint, build. The sequence stops at the first failure
// and marks the remaining steps skipped.
func (o *Orchestrator) Pipeline() *pipeline.Sequencer {
	return pipeline.New(
		pipeline.Step{Name: "install", Run: o.Install},
		pipeline.Step{Name: "test", Run: func(ctx context.Context) error { return o.Test(ctx) }},
		pipeline.Step{Name: "lint", Run: o.Lint},
		pipeline.Step{Name: "build", Run: o.Build},
	)
}
