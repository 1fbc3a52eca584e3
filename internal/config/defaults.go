package config

// DefaultConfig returns the built-in configuration. User and project
// config files overlay these values.
func DefaultConfig() Config {
	return Config{
		Toolchain: ToolchainSettings{
			GoBinary:      "go",
			LintBinary:    "golangci-lint",
			FormatBinary:  "gofmt",
			ReleaseBinary: "goreleaser",
		},
		Build: BuildSettings{
			OutputDir: "bin",
			Binary:    "ocsdev",
			Packages:  "./...",
		},
		Test: TestSettings{
			Packages:          "./...",
			CoverageThreshold: 85,
			CoverageProfile:   "coverage.out",
			CoverageHTML:      "coverage.html",
		},
		Clean: CleanSettings{
			Patterns: DefaultCleanPatterns(),
		},
	}
}

// DefaultCleanPatterns is the fixed set of build artifacts and cache files
// removed by the clean subcommand. A pattern that matches nothing is a
// no-op, not an error.
func DefaultCleanPatterns() []string {
	return []string{
		"bin/",
		"dist/",
		"coverage.out",
		"coverage.html",
		"coverage.xml",
		"htmlcov/",
		"**/*.test",
		"**/*.out.tmp",
		".ocsdev/cache/",
	}
}
