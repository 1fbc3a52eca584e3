package testrunner

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocsdev/internal/config"
)

func testDefaults() Defaults {
	return DefaultsFromConfig(config.DefaultConfig())
}

func TestModePriorityOrder(t *testing.T) {
	assert.Equal(t, ModeSetup, Options{Setup: true, Check: true, Quick: true}.Mode())
	assert.Equal(t, ModeCheck, Options{Check: true, Lint: true, Coverage: true}.Mode())
	assert.Equal(t, ModeLint, Options{Lint: true, Quick: true}.Mode())
	assert.Equal(t, ModeQuick, Options{Quick: true, Integration: true, Coverage: true}.Mode())
	assert.Equal(t, ModeIntegration, Options{Integration: true, Coverage: true}.Mode())
	assert.Equal(t, ModeCoverage, Options{Coverage: true}.Mode())
	assert.Equal(t, ModeDefault, Options{}.Mode())
}

func TestBuildQuickInvocation(t *testing.T) {
	inv := Build(Options{Quick: true}, testDefaults())

	assert.Equal(t, []string{"test", "-short", "-v", "./..."}, inv.Args)
	assert.Empty(t, inv.CoverProfile)
	assert.Zero(t, inv.FailUnder)
}

func TestQuickTakesPriorityOverCoverage(t *testing.T) {
	// --quick together with --coverage must produce the quick-unit-test
	// invocation with no coverage fragments applied.
	inv := Build(Options{Quick: true, Coverage: true, CoverageFail: 90}, testDefaults())

	assert.Equal(t, []string{"test", "-short", "-v", "./..."}, inv.Args)
	assert.Empty(t, inv.CoverProfile)
	assert.Zero(t, inv.FailUnder)
}

func TestBuildIntegrationInvocation(t *testing.T) {
	inv := Build(Options{Integration: true}, testDefaults())

	assert.Equal(t, []string{"test", "-tags=integration", "-run", "Integration", "-v", "./..."}, inv.Args)
}

func TestBuildCoverageWithThreshold(t *testing.T) {
	inv := Build(Options{Coverage: true, CoverageFail: 90}, testDefaults())

	assert.Contains(t, inv.Args, "-coverprofile=coverage.out")
	assert.Contains(t, inv.Args, "-covermode=atomic")
	assert.Equal(t, 90, inv.FailUnder)
	// The quick-mode marker must not leak into a coverage run.
	assert.NotContains(t, inv.Args, "-short")
	assert.Equal(t, "coverage.html", inv.CoverHTML)
}

func TestBuildCoverageDefaultThreshold(t *testing.T) {
	inv := Build(Options{Coverage: true}, testDefaults())
	assert.Equal(t, 85, inv.FailUnder)
}

func TestBuildDefaultWithIndependentFlags(t *testing.T) {
	inv := Build(Options{
		Verbose:   true,
		Parallel:  "4",
		RunFilter: "TestPipeline",
	}, testDefaults())

	assert.Equal(t, []string{"test", "-parallel", "4", "-v", "-run", "TestPipeline", "./..."}, inv.Args)
}

func TestBuildParallelAutoUsesCPUCount(t *testing.T) {
	inv := Build(Options{Parallel: "auto"}, testDefaults())

	require.Contains(t, inv.Args, "-parallel")
	idx := indexOf(inv.Args, "-parallel")
	assert.Equal(t, strconv.Itoa(runtime.NumCPU()), inv.Args[idx+1])
}

func TestBuildExplicitSelectorsReplacePackages(t *testing.T) {
	inv := Build(Options{Tests: []string{"./internal/pipeline", "./internal/clean"}}, testDefaults())

	assert.Equal(t, []string{"test", "./internal/pipeline", "./internal/clean"}, inv.Args)
	assert.NotContains(t, inv.Args, "./...")
}

func TestBuildPassthroughArgsComeLast(t *testing.T) {
	inv := Build(Options{
		Verbose:     true,
		Tests:       []string{"./internal/pipeline"},
		Passthrough: []string{"-count=3", "-failfast"},
	}, testDefaults())

	n := len(inv.Args)
	assert.Equal(t, []string{"-count=3", "-failfast"}, inv.Args[n-2:])
}

func TestValidateParallel(t *testing.T) {
	assert.NoError(t, validateParallel(""))
	assert.NoError(t, validateParallel("auto"))
	assert.NoError(t, validateParallel("8"))
	assert.Error(t, validateParallel("zero"))
	assert.Error(t, validateParallel("0"))
	assert.Error(t, validateParallel("-2"))
}

func indexOf(args []string, want string) int {
	for i, a := range args {
		if a == want {
			return i
		}
	}
	return -1
}
