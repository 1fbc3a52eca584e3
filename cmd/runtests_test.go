package cmd

import (
	"testing"
)

func TestRunTestsFlagsRegistered(t *testing.T) {
	flags := []string{
		"setup",
		"check",
		"lint",
		"quick",
		"integration",
		"coverage",
		"coverage-fail",
		"copy",
		"parallel",
		"verbose",
		"run",
		"tests",
		"go-test-args",
	}

	for _, name := range flags {
		if runTestsCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected run-tests to define flag --%s", name)
		}
	}
}

func TestRunTestsBareParallelMeansAuto(t *testing.T) {
	flag := runTestsCmd.Flags().Lookup("parallel")
	if flag == nil {
		t.Fatal("Expected flag --parallel to exist")
	}
	if flag.NoOptDefVal != "auto" {
		t.Errorf("Expected bare --parallel to default to 'auto', got %q", flag.NoOptDefVal)
	}

	if err := runTestsCmd.Flags().Parse([]string{"--parallel"}); err != nil {
		t.Fatalf("Bare --parallel should parse: %v", err)
	}
	if runTestsParallel != "auto" {
		t.Errorf("Expected bare --parallel to set 'auto', got %q", runTestsParallel)
	}
	runTestsParallel = ""
}

func TestRunTestsShorthands(t *testing.T) {
	shorthands := map[string]string{
		"verbose": "v",
		"run":     "m",
		"tests":   "t",
	}

	for name, short := range shorthands {
		flag := runTestsCmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("Expected flag --%s to exist", name)
		}
		if flag.Shorthand != short {
			t.Errorf("Expected --%s shorthand to be -%s, got -%s", name, short, flag.Shorthand)
		}
	}
}

func TestTestCommandHasQuickFlag(t *testing.T) {
	if testCmd.Flags().Lookup("quick") == nil {
		t.Error("Expected test to define flag --quick")
	}
}

func TestAllCommandHasTUIFlag(t *testing.T) {
	if allCmd.Flags().Lookup("tui") == nil {
		t.Error("Expected all to define flag --tui")
	}
}
