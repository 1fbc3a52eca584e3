// Package toolchain installs and verifies the module's dependencies and
// the dev tools named in the configuration.
package toolchain

import (
	"context"
	"fmt"
	"strings"

	"ocsdev/internal/config"
	"ocsdev/internal/executor"
	"ocsdev/internal/reporting"
	"ocsdev/pkg/logging"
)

// Manager drives the go toolchain for dependency and tool installation.
type Manager struct {
	GoBinary string
	Dir      string
	Console  *reporting.Console
}

// NewManager creates a manager for the project in dir.
func NewManager(cfg config.Config, dir string, console *reporting.Console) *Manager {
	return &Manager{
		GoBinary: cfg.Toolchain.GoBinary,
		Dir:      dir,
		Console:  console,
	}
}

// CheckGo verifies that the go toolchain is installed, printing an
// install hint when it is not.
func (m *Manager) CheckGo(ctx context.Context) error {
	if executor.Available(m.GoBinary) {
		return nil
	}
	m.Console.Error("%s is not installed. Please install Go first:", m.GoBinary)
	m.Console.Info("https://go.dev/doc/install")
	return &executor.NotFoundError{Name: m.GoBinary}
}

// InstallDependencies downloads and verifies the module dependencies.
func (m *Manager) InstallDependencies(ctx context.Context) error {
	if err := m.run(ctx, "Downloading module dependencies", "mod", "download"); err != nil {
		return err
	}
	return m.run(ctx, "Verifying module dependencies", "mod", "verify")
}

// InstallTools installs the dev tools listed in the configuration. An
// empty tool list is a skip with a warning, not a failure.
func (m *Manager) InstallTools(ctx context.Context, tools []config.ToolSpec) error {
	if len(tools) == 0 {
		m.Console.Warning("no dev tools configured, skipping tool install")
		return nil
	}
	for _, tool := range tools {
		if err := m.run(ctx, fmt.Sprintf("Installing %s", tool.Name), "install", tool.Module); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) run(ctx context.Context, description string, args ...string) error {
	m.Console.Info("Running: %s %s", m.GoBinary, strings.Join(args, " "))
	res, err := executor.Run(ctx, m.Dir, m.GoBinary, args...)
	if err != nil {
		logging.Error("toolchain", err, "%s failed", description)
		m.Console.Error("%s failed", description)
		if res != nil && strings.TrimSpace(res.Stderr) != "" {
			m.Console.Info("Error output: %s", strings.TrimSpace(res.Stderr))
		}
		return fmt.Errorf("%s: %w", description, err)
	}
	m.Console.Success("%s completed successfully", description)
	return nil
}
