// Package testutil provides the shared fixtures used across the test
// suite: environment isolation and disposable project directories.
package testutil

import (
	"os"
	"strings"
	"testing"
)

// CleanedVars is the fixed set of environment variables scrubbed before
// each test so results never depend on the enclosing shell. They are the
// variables the provisioning flow injects into development containers.
var CleanedVars = []string{
	"PASSWORD",
	"GIT_REPO_URL",
	"SSH_PRIVATE_KEY",
	"GIT_USER_NAME",
	"GIT_USER_EMAIL",
	"VSCODE_EXTENSIONS",
	"CURSOR_EXTENSIONS",
	"VSCODE_SETTINGS",
	"CURSOR_SETTINGS",
	"SKIP_GIT_SETUP",
}

// CleanEnvironment unsets every variable in CleanedVars for the duration
// of the test and restores the complete original environment afterwards.
func CleanEnvironment(t *testing.T) {
	t.Helper()

	original := os.Environ()

	for _, name := range CleanedVars {
		os.Unsetenv(name)
	}

	t.Cleanup(func() {
		os.Clearenv()
		for _, kv := range original {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				continue
			}
			os.Setenv(key, value)
		}
	})
}
