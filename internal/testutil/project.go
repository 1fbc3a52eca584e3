package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TempProjectDir creates a disposable project directory for a test.
func TempProjectDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// GitProjectDir creates a disposable project directory with an
// initialized git repository, a configured test identity, and an origin
// remote. Tests are skipped when git is not installed.
func GitProjectDir(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	for _, args := range [][]string{
		{"init"},
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
		{"remote", "add", "origin", "git@github.com:test/repo.git"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	return dir
}

// WriteFile creates a file (and any parent directories) with content.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
