package testrunner

// Mode identifies which high-level action a run-tests invocation performs.
// Exactly one mode executes per invocation.
type Mode string

const (
	// ModeSetup installs test dependencies and dev tools, then exits.
	ModeSetup Mode = "setup"
	// ModeCheck reports the test file structure, then exits.
	ModeCheck Mode = "check"
	// ModeLint vets the packages under test, then exits.
	ModeLint Mode = "lint"
	// ModeQuick runs the short unit-test subset.
	ModeQuick Mode = "quick"
	// ModeIntegration runs integration-tagged tests only.
	ModeIntegration Mode = "integration"
	// ModeCoverage runs the full suite with coverage reports and a
	// minimum-coverage threshold.
	ModeCoverage Mode = "coverage"
	// ModeDefault runs the suite with whatever flags were supplied.
	ModeDefault Mode = "default"
)

// Options carries the parsed run-tests flags. Flags irrelevant to the
// selected mode are silently ignored.
type Options struct {
	Setup       bool
	Check       bool
	Lint        bool
	Quick       bool
	Integration bool
	Coverage    bool

	// CoverageFail is the minimum total coverage percent; runs below it
	// fail. Zero means use the configured default.
	CoverageFail int

	// Parallel is "", "auto", or a worker count.
	Parallel string

	Verbose bool

	// RunFilter narrows the run to tests matching the expression
	// (go test -run semantics).
	RunFilter string

	// Tests are explicit package selectors, appended positionally.
	Tests []string

	// Passthrough arguments are appended last, unmodified.
	Passthrough []string

	// CopyReportPath puts the HTML report path on the clipboard after a
	// coverage run.
	CopyReportPath bool
}

// Mode selects the action for this invocation by fixed priority:
// setup, check, lint, quick, integration, coverage, then the default
// full run.
func (o Options) Mode() Mode {
	switch {
	case o.Setup:
		return ModeSetup
	case o.Check:
		return ModeCheck
	case o.Lint:
		return ModeLint
	case o.Quick:
		return ModeQuick
	case o.Integration:
		return ModeIntegration
	case o.Coverage:
		return ModeCoverage
	default:
		return ModeDefault
	}
}

// Invocation is a constructed go-test command line plus the follow-up
// coverage handling that cannot be expressed as go test arguments.
type Invocation struct {
	// Args are the arguments passed to the go binary, starting with
	// the "test" verb.
	Args []string

	// CoverProfile is the profile path when coverage is collected.
	CoverProfile string

	// CoverHTML is the HTML report path rendered from the profile.
	CoverHTML string

	// FailUnder is the minimum total coverage percent; zero disables
	// threshold enforcement.
	FailUnder int

	// CopyReportPath puts the HTML report path on the clipboard once
	// the report is rendered.
	CopyReportPath bool
}
