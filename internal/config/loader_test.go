package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content Config) string {
	t.Helper()
	tempFilePath := filepath.Join(dir, configFileName)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

func mockConfigPaths(t *testing.T, userPath, projectPath string) {
	t.Helper()
	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()

	// Point to non-existent files so only defaults apply.
	mockConfigPaths(t,
		filepath.Join(tempDir, "no-user-config.yaml"),
		filepath.Join(tempDir, "no-project-config.yaml"))

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), loaded)
	assert.Equal(t, "go", loaded.Toolchain.GoBinary)
	assert.Equal(t, 85, loaded.Test.CoverageThreshold)
	assert.Equal(t, DefaultCleanPatterns(), loaded.Clean.Patterns)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()

	userDir := filepath.Join(tempDir, userConfigDir)
	userPath := createTempConfigFile(t, userDir, Config{
		Toolchain: ToolchainSettings{LintBinary: "/opt/lint/golangci-lint"},
		Test:      TestSettings{CoverageThreshold: 70},
	})
	mockConfigPaths(t, userPath, filepath.Join(tempDir, "no-project-config.yaml"))

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/opt/lint/golangci-lint", loaded.Toolchain.LintBinary)
	assert.Equal(t, 70, loaded.Test.CoverageThreshold)
	// Untouched fields keep their defaults.
	assert.Equal(t, "go", loaded.Toolchain.GoBinary)
	assert.Equal(t, "bin", loaded.Build.OutputDir)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()

	userPath := createTempConfigFile(t, filepath.Join(tempDir, "user"), Config{
		Test: TestSettings{CoverageThreshold: 70},
	})
	projectPath := createTempConfigFile(t, filepath.Join(tempDir, "project"), Config{
		Test:  TestSettings{CoverageThreshold: 90},
		Clean: CleanSettings{Patterns: []string{"out/"}},
	})
	mockConfigPaths(t, userPath, projectPath)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 90, loaded.Test.CoverageThreshold)
	assert.Equal(t, []string{"out/"}, loaded.Clean.Patterns)
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	tempDir := t.TempDir()
	projectPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(projectPath, []byte("toolchain: ["), 0644))
	mockConfigPaths(t, filepath.Join(tempDir, "no-user-config.yaml"), projectPath)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestMergeConfigs_ToolsMergeByName(t *testing.T) {
	base := DefaultConfig()
	base.Tools = []ToolSpec{
		{Name: "golangci-lint", Module: "github.com/golangci/golangci-lint/cmd/golangci-lint@v1.60.0"},
		{Name: "gofumpt", Module: "mvdan.cc/gofumpt@latest"},
	}

	overlay := Config{
		Tools: []ToolSpec{
			{Name: "golangci-lint", Module: "github.com/golangci/golangci-lint/cmd/golangci-lint@latest"},
			{Name: "staticcheck", Module: "honnef.co/go/tools/cmd/staticcheck@latest"},
		},
	}

	merged := mergeConfigs(base, overlay)
	require.Len(t, merged.Tools, 3)
	assert.Equal(t, "github.com/golangci/golangci-lint/cmd/golangci-lint@latest", merged.Tools[0].Module)
	assert.Equal(t, "gofumpt", merged.Tools[1].Name)
	assert.Equal(t, "staticcheck", merged.Tools[2].Name)
}
