package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ocsdev/internal/config"
	"ocsdev/internal/mcpserver"
)

// mcpServerCmd represents the mcp-server command
var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Serve the build tools over MCP stdio",
	Long: `mcp-server exposes the build steps as Model Context Protocol tools
over stdio, for integration with AI assistants like Claude or Cursor.

Exposed tools:
  install_dependencies - download, verify, and install dev tools
  run_tests            - run the test suite and return its output
  lint                 - run the configured linter
  build                - build project binaries
  clean_artifacts      - remove build artifacts and caches

Stdout carries the MCP protocol, so all tool output is captured and
returned in tool results rather than printed.`,
	RunE: runMCPServer,
}

func init() {
	rootCmd.AddCommand(mcpServerCmd)
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	srv := mcpserver.New(cfg, dir, rootCmd.Version)
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
