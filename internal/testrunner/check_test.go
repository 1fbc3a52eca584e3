package testrunner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0644))
}

func TestCheckStructureReportsPackages(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "internal", "pipeline", "pipeline.go"))
	touch(t, filepath.Join(root, "internal", "pipeline", "pipeline_test.go"))
	touch(t, filepath.Join(root, "internal", "clean", "clean_test.go"))
	touch(t, filepath.Join(root, "internal", "clean", "testdata", "fixture.yaml"))
	touch(t, filepath.Join(root, "internal", "testutil", "env.go"))

	report, err := CheckStructure(root)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalTestFiles())
	assert.Equal(t, []string{
		filepath.Join("internal", "clean"),
		filepath.Join("internal", "pipeline"),
	}, report.Packages())
	assert.Equal(t, []string{filepath.Join("internal", "clean", "testdata")}, report.TestdataDirs)
	assert.True(t, report.HasTestHelpers)
}

func TestCheckStructureSkipsVendoredTrees(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "pkg", "logging", "logging_test.go"))
	touch(t, filepath.Join(root, "vendor", "dep", "dep_test.go"))
	touch(t, filepath.Join(root, ".git", "hooks", "x_test.go"))

	report, err := CheckStructure(root)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalTestFiles())
}

func TestCheckStructureFailsWithoutTests(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "main.go"))

	report, err := CheckStructure(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no test files found")
	assert.NotNil(t, report)
	assert.False(t, report.HasTestHelpers)
}
