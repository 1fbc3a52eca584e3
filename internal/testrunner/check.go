package testrunner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// StructureReport summarizes the test layout of a project tree.
type StructureReport struct {
	// TestFilesByPackage maps package directories (relative to the
	// project root) to their _test.go files.
	TestFilesByPackage map[string][]string
	// TestdataDirs lists testdata directories found in the tree.
	TestdataDirs []string
	// HasTestHelpers reports whether a shared test helper package
	// (internal/testutil) exists.
	HasTestHelpers bool
}

// TotalTestFiles returns the number of _test.go files in the tree.
func (r *StructureReport) TotalTestFiles() int {
	total := 0
	for _, files := range r.TestFilesByPackage {
		total += len(files)
	}
	return total
}

// Packages returns the package directories with tests, sorted.
func (r *StructureReport) Packages() []string {
	pkgs := make([]string, 0, len(r.TestFilesByPackage))
	for pkg := range r.TestFilesByPackage {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}

// CheckStructure walks the project tree and reports its test layout.
// A tree without any test files is an error.
func CheckStructure(root string) (*StructureReport, error) {
	report := &StructureReport{
		TestFilesByPackage: make(map[string][]string),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "vendor", "bin", "dist":
				return filepath.SkipDir
			case "testdata":
				rel, relErr := filepath.Rel(root, path)
				if relErr == nil {
					report.TestdataDirs = append(report.TestdataDirs, rel)
				}
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, relErr := filepath.Rel(root, filepath.Dir(path))
		if relErr != nil {
			return relErr
		}
		report.TestFilesByPackage[rel] = append(report.TestFilesByPackage[rel], d.Name())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking project tree: %w", err)
	}

	for pkg := range report.TestFilesByPackage {
		sort.Strings(report.TestFilesByPackage[pkg])
	}
	sort.Strings(report.TestdataDirs)

	helperDir := filepath.Join(root, "internal", "testutil")
	if entries, statErr := filepath.Glob(filepath.Join(helperDir, "*.go")); statErr == nil && len(entries) > 0 {
		report.HasTestHelpers = true
	}

	if report.TotalTestFiles() == 0 {
		return report, fmt.Errorf("no test files found under %s", root)
	}
	return report, nil
}
