// Package mcpserver exposes the build steps as MCP tools over stdio so
// agent clients can drive installs, tests, lint, and builds without
// shelling out to the CLI themselves.
//
// Every external command runs with captured output: stdout belongs to
// the MCP protocol, so nothing a tool spawns may write to it directly.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ocsdev/internal/clean"
	"ocsdev/internal/config"
	"ocsdev/internal/executor"
	"ocsdev/internal/testrunner"
	"ocsdev/pkg/logging"
)

// Server serves build tools over MCP stdio.
type Server struct {
	cfg config.Config
	dir string
	mcp *server.MCPServer
}

// New creates an MCP server for the project in dir.
func New(cfg config.Config, dir, version string) *Server {
	s := &Server{cfg: cfg, dir: dir}

	s.mcp = server.NewMCPServer(
		"ocsdev",
		version,
		server.WithToolCapabilities(true),
	)

	s.mcp.AddTool(mcp.NewTool("install_dependencies",
		mcp.WithDescription("Download and verify module dependencies and install configured dev tools"),
	), s.handleInstall)

	s.mcp.AddTool(mcp.NewTool("run_tests",
		mcp.WithDescription("Run the test suite and return its output"),
		mcp.WithString("mode",
			mcp.Description("Test mode: quick, integration, coverage, or default"),
			mcp.Enum("quick", "integration", "coverage", "default"),
		),
		mcp.WithString("run",
			mcp.Description("Regexp passed to go test -run to select tests"),
		),
	), s.handleRunTests)

	s.mcp.AddTool(mcp.NewTool("lint",
		mcp.WithDescription("Run the configured linter and report findings"),
	), s.handleLint)

	s.mcp.AddTool(mcp.NewTool("build",
		mcp.WithDescription("Build project binaries into the output directory"),
	), s.handleBuild)

	s.mcp.AddTool(mcp.NewTool("clean_artifacts",
		mcp.WithDescription("Remove build artifacts, coverage files, and caches"),
	), s.handleClean)

	return s
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	logging.Info("mcpserver", "serving build tools over stdio")
	return server.ServeStdio(s.mcp)
}

// capture runs a command and folds its output and exit status into a
// single tool result.
func (s *Server) capture(ctx context.Context, name string, args ...string) (*mcp.CallToolResult, error) {
	res, err := executor.Run(ctx, s.dir, name, args...)
	if err != nil {
		out := ""
		if res != nil {
			out = res.Stdout + res.Stderr
		}
		return mcp.NewToolResultError(fmt.Sprintf("%v\n%s", err, strings.TrimSpace(out))), nil
	}
	out := strings.TrimSpace(res.Stdout + res.Stderr)
	if out == "" {
		out = fmt.Sprintf("%s %s: ok", name, strings.Join(args, " "))
	}
	return mcp.NewToolResultText(out), nil
}

// stderrOf tolerates the nil result a vanished binary produces.
func stderrOf(res *executor.Result) string {
	if res == nil {
		return ""
	}
	return res.Stderr
}

func (s *Server) handleInstall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goBin := s.cfg.Toolchain.GoBinary
	if !executor.Available(goBin) {
		return mcp.NewToolResultError(fmt.Sprintf("%s is not installed", goBin)), nil
	}
	for _, args := range [][]string{{"mod", "download"}, {"mod", "verify"}} {
		if res, err := executor.Run(ctx, s.dir, goBin, args...); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("go %s failed: %v\n%s", strings.Join(args, " "), err, stderrOf(res))), nil
		}
	}
	for _, tool := range s.cfg.Tools {
		if res, err := executor.Run(ctx, s.dir, goBin, "install", tool.Module); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("installing %s failed: %v\n%s", tool.Name, err, stderrOf(res))), nil
		}
	}
	return mcp.NewToolResultText("dependencies installed and verified"), nil
}

func (s *Server) handleRunTests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := testrunner.Options{}
	switch request.GetString("mode", "default") {
	case "quick":
		opts.Quick = true
	case "integration":
		opts.Integration = true
	case "coverage":
		opts.Coverage = true
	}
	opts.RunFilter = request.GetString("run", "")

	inv := testrunner.Build(opts, testrunner.DefaultsFromConfig(s.cfg))
	return s.capture(ctx, s.cfg.Toolchain.GoBinary, inv.Args...)
}

func (s *Server) handleLint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lintBin := s.cfg.Toolchain.LintBinary
	if !executor.Available(lintBin) {
		return mcp.NewToolResultError(fmt.Sprintf("%s is not installed", lintBin)), nil
	}
	return s.capture(ctx, lintBin, "run")
}

func (s *Server) handleBuild(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outDir := s.cfg.Build.OutputDir
	return s.capture(ctx, s.cfg.Toolchain.GoBinary, "build", "-o", outDir+"/", s.cfg.Build.Packages)
}

func (s *Server) handleClean(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	removed, err := clean.Remove(s.dir, s.cfg.Clean.Patterns)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("clean failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("removed %d artifact path(s)", removed)), nil
}
