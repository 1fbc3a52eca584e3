package cmd

import (
	"fmt"
	"os"

	"ocsdev/internal/config"
	"ocsdev/internal/orchestrator"
	"ocsdev/internal/reporting"
)

// commandEnv bundles what every build subcommand needs: the layered
// configuration, the project directory, and the console reporter.
type commandEnv struct {
	cfg     config.Config
	dir     string
	console *reporting.Console
	orc     *orchestrator.Orchestrator
}

func newCommandEnv() (*commandEnv, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	console := reporting.NewConsole(os.Stdout)
	return &commandEnv{
		cfg:     cfg,
		dir:     dir,
		console: console,
		orc:     orchestrator.New(cfg, dir, console),
	}, nil
}
