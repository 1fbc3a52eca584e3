package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "ocsdev" {
		t.Errorf("Expected Use to be 'ocsdev', got %s", rootCmd.Use)
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("Expected version 1.2.3, got %s", rootCmd.Version)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	expected := []string{
		"install",
		"test",
		"clean",
		"build",
		"lint",
		"all",
		"run-tests",
		"version",
		"self-update",
		"mcp-server",
	}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

func TestRootHelpListsBuildCommands(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Error executing root help: %v", err)
	}

	output := buf.String()
	for _, name := range []string{"install", "run-tests", "clean"} {
		if !strings.Contains(output, name) {
			t.Errorf("Help output should mention %q. Got: %q", name, output)
		}
	}
}
