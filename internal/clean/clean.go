// Package clean removes build artifacts and cache files matched by a
// fixed set of glob patterns. Patterns prefixed with "**/" are expanded
// recursively from the project root; a trailing "/" restricts a pattern
// to directories. A pattern that matches nothing is a no-op, not an
// error, which makes repeated runs idempotent.
package clean

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// RecursiveMarker prefixes patterns expanded against every subdirectory.
const RecursiveMarker = "**/"

// Remove deletes everything under root matched by the patterns and
// returns the number of files and directories removed.
func Remove(root string, patterns []string) (int, error) {
	removed := 0
	for _, pattern := range patterns {
		n, err := removePattern(root, pattern)
		if err != nil {
			return removed, err
		}
		removed += n
	}
	return removed, nil
}

func removePattern(root, pattern string) (int, error) {
	dirOnly := strings.HasSuffix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")

	if strings.HasPrefix(pattern, RecursiveMarker) {
		return removeRecursive(root, strings.TrimPrefix(pattern, RecursiveMarker), dirOnly)
	}

	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, match := range matches {
		n, err := removePath(match, dirOnly)
		if err != nil {
			return removed, err
		}
		removed += n
	}
	return removed, nil
}

// removeRecursive walks root and removes every entry whose base name
// matches the pattern. Version-control metadata is never touched.
func removeRecursive(root, pattern string, dirOnly bool) (int, error) {
	removed := 0
	var toRemove []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Entries deleted while walking are not failures.
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if dirOnly && !d.IsDir() {
			return nil
		}

		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if ok {
			toRemove = append(toRemove, path)
			if d.IsDir() {
				return filepath.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, path := range toRemove {
		n, err := removePath(path, dirOnly)
		if err != nil {
			return removed, err
		}
		removed += n
	}
	return removed, nil
}

func removePath(path string, dirOnly bool) (int, error) {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if info.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if dirOnly {
		return 0, nil
	}
	if err := os.Remove(path); err != nil {
		return 0, err
	}
	return 1, nil
}
