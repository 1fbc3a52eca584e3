// Package testrunner translates run-tests flags into go test invocations
// and executes them. Mutually exclusive high-level modes (setup, check,
// lint, quick, integration, coverage) are selected by fixed priority;
// the default mode builds an argument list from the independent flags.
package testrunner

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"ocsdev/internal/config"
	"ocsdev/internal/executor"
	"ocsdev/internal/reporting"
	"ocsdev/internal/toolchain"
	"ocsdev/pkg/logging"
)

// Runner executes the test framework with translated arguments.
type Runner struct {
	cfg      config.Config
	dir      string
	console  *reporting.Console
	defaults Defaults
}

// New creates a runner for the project in dir.
func New(cfg config.Config, dir string, console *reporting.Console) *Runner {
	return &Runner{
		cfg:      cfg,
		dir:      dir,
		console:  console,
		defaults: DefaultsFromConfig(cfg),
	}
}

// Run performs the action selected by the options. For test-executing
// modes the go test exit status is returned unchanged so callers can
// propagate it as the process exit code.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if err := validateParallel(opts.Parallel); err != nil {
		return err
	}

	switch opts.Mode() {
	case ModeSetup:
		return r.setup(ctx)
	case ModeCheck:
		return r.checkStructure()
	case ModeLint:
		return r.lint(ctx)
	case ModeQuick:
		r.console.Step("Running quick unit tests")
	case ModeIntegration:
		r.console.Step("Running integration tests")
	case ModeCoverage:
		r.console.Step("Generating coverage report")
	default:
		r.describeRun(opts)
	}

	inv := Build(opts, r.defaults)
	inv.CopyReportPath = opts.CopyReportPath

	return r.execute(ctx, inv)
}

func (r *Runner) describeRun(opts Options) {
	description := "Running tests"
	if opts.RunFilter != "" {
		description += fmt.Sprintf(" (filter: %s)", opts.RunFilter)
	}
	if len(opts.Tests) > 0 {
		description += fmt.Sprintf(" (specific: %s)", strings.Join(opts.Tests, ", "))
	}
	r.console.Step("%s", description)
}

func (r *Runner) execute(ctx context.Context, inv Invocation) error {
	goBin := r.cfg.Toolchain.GoBinary
	r.console.Info("Running: %s %s", goBin, strings.Join(inv.Args, " "))

	if err := executor.RunAttached(ctx, r.dir, goBin, inv.Args...); err != nil {
		logging.Error("testrunner", err, "test execution failed")
		return err
	}

	if inv.CoverProfile == "" {
		return nil
	}
	return r.coverageReports(ctx, inv)
}

// coverageReports renders the terminal and HTML coverage reports and
// enforces the minimum-coverage threshold.
func (r *Runner) coverageReports(ctx context.Context, inv Invocation) error {
	goBin := r.cfg.Toolchain.GoBinary

	funcRes, err := executor.Run(ctx, r.dir, goBin, "tool", "cover", "-func="+inv.CoverProfile)
	if err != nil {
		return fmt.Errorf("rendering coverage summary: %w", err)
	}
	r.console.Info("%s", strings.TrimRight(funcRes.Stdout, "\n"))

	if _, err := executor.Run(ctx, r.dir, goBin, "tool", "cover", "-html="+inv.CoverProfile, "-o", inv.CoverHTML); err != nil {
		return fmt.Errorf("rendering HTML coverage report: %w", err)
	}

	r.console.Info("\n📊 Coverage report generated:")
	r.console.Info("  - Terminal: displayed above")
	r.console.Info("  - HTML: %s", inv.CoverHTML)
	r.console.Info("  - Profile: %s", inv.CoverProfile)

	if inv.CopyReportPath {
		if err := clipboard.WriteAll(inv.CoverHTML); err != nil {
			r.console.Warning("could not copy report path to clipboard: %v", err)
		} else {
			r.console.Info("  - Path copied to clipboard")
		}
	}

	percent, err := ParseTotalCoverage(funcRes.Stdout)
	if err != nil {
		return err
	}
	if err := CheckThreshold(percent, inv.FailUnder); err != nil {
		r.console.Error("%v", err)
		return err
	}
	r.console.Success("Total coverage %.1f%% meets the %d%% threshold", percent, inv.FailUnder)
	return nil
}

func (r *Runner) setup(ctx context.Context) error {
	manager := toolchain.NewManager(r.cfg, r.dir, r.console)
	if err := manager.CheckGo(ctx); err != nil {
		return err
	}
	if err := manager.InstallDependencies(ctx); err != nil {
		return err
	}
	if err := manager.InstallTools(ctx, r.cfg.Tools); err != nil {
		return err
	}
	r.console.Success("Setup complete!")
	return nil
}

func (r *Runner) checkStructure() error {
	r.console.Step("Checking test structure")

	report, err := CheckStructure(r.dir)
	if report != nil {
		for _, pkg := range report.Packages() {
			files := report.TestFilesByPackage[pkg]
			r.console.Info("  - %s: %d test file(s)", pkg, len(files))
		}
	}
	if err != nil {
		r.console.Error("%v", err)
		return err
	}

	r.console.Success("Found %d test files in %d packages", report.TotalTestFiles(), len(report.TestFilesByPackage))
	if report.HasTestHelpers {
		r.console.Success("shared test helpers found (internal/testutil)")
	} else {
		r.console.Warning("no shared test helper package found")
	}
	for _, dir := range report.TestdataDirs {
		r.console.Info("  - testdata: %s", dir)
	}
	return nil
}

func (r *Runner) lint(ctx context.Context) error {
	r.console.Step("Vetting packages under test")
	res, err := executor.Run(ctx, r.dir, r.cfg.Toolchain.GoBinary, "vet", r.defaults.Packages)
	if err != nil {
		r.console.Error("go vet reported problems")
		if res != nil && strings.TrimSpace(res.Stderr) != "" {
			r.console.Info("%s", strings.TrimSpace(res.Stderr))
		}
		return err
	}
	r.console.Success("go vet passed")
	return nil
}

func validateParallel(value string) error {
	if value == "" || value == "auto" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid parallel worker count %q (use a positive number or 'auto')", value)
	}
	return nil
}
