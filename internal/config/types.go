package config

// Config is the top-level configuration structure for ocsdev.
type Config struct {
	Toolchain ToolchainSettings `yaml:"toolchain"`
	Build     BuildSettings     `yaml:"build"`
	Test      TestSettings      `yaml:"test"`
	Clean     CleanSettings     `yaml:"clean"`
	Tools     []ToolSpec        `yaml:"tools,omitempty"`
}

// ToolchainSettings names the external binaries the pipeline shells out to.
type ToolchainSettings struct {
	GoBinary      string `yaml:"goBinary,omitempty"`      // e.g. "go" or an absolute path
	LintBinary    string `yaml:"lintBinary,omitempty"`    // e.g. "golangci-lint"
	FormatBinary  string `yaml:"formatBinary,omitempty"`  // e.g. "gofmt"
	ReleaseBinary string `yaml:"releaseBinary,omitempty"` // e.g. "goreleaser"
}

// BuildSettings control the build subcommand.
type BuildSettings struct {
	OutputDir string `yaml:"outputDir,omitempty"` // where binaries land, e.g. "bin"
	Binary    string `yaml:"binary,omitempty"`    // output binary name
	Packages  string `yaml:"packages,omitempty"`  // package pattern, e.g. "./..."
}

// TestSettings control the test-runner wrapper defaults.
type TestSettings struct {
	Packages          string `yaml:"packages,omitempty"`          // package pattern for test runs
	CoverageThreshold int    `yaml:"coverageThreshold,omitempty"` // minimum total coverage percent
	CoverageProfile   string `yaml:"coverageProfile,omitempty"`   // profile output path
	CoverageHTML      string `yaml:"coverageHTML,omitempty"`      // HTML report output path
}

// CleanSettings list the glob patterns removed by the clean subcommand.
// Patterns prefixed with "**/" are expanded recursively.
type CleanSettings struct {
	Patterns []string `yaml:"patterns,omitempty"`
}

// ToolSpec is a dev tool installed by the install subcommand, as a Go
// module path with version suffix (e.g. ".../golangci-lint@latest").
type ToolSpec struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module"`
}
