package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ocsdev/internal/executor"
	"ocsdev/internal/testrunner"
)

var (
	runTestsSetup       bool
	runTestsCheck       bool
	runTestsLint        bool
	runTestsQuick       bool
	runTestsIntegration bool
	runTestsCoverage    bool
	runTestsCoverFail   int
	runTestsParallel    string
	runTestsVerbose     bool
	runTestsRunFilter   string
	runTestsTests       []string
	runTestsGoTestArgs  []string
	runTestsCopy        bool
)

// runTestsCmd represents the run-tests command
var runTestsCmd = &cobra.Command{
	Use:   "run-tests",
	Short: "Translate test flags into go test invocations and run them",
	Long: `run-tests is the test entry point the test subcommand re-execs.
It translates its flags into a single go test invocation and runs it,
propagating the go test exit code as its own.

Modes are mutually exclusive and selected by fixed priority, highest
first: --setup, --check, --lint, --quick, --integration, --coverage.
Whichever wins, the rest of that mode group is ignored. Without a mode
flag, a full run is assembled from the independent flags.

Example usage:
  ocsdev run-tests                          # full suite
  ocsdev run-tests --quick                  # short tests only
  ocsdev run-tests --coverage               # coverage + reports + threshold
  ocsdev run-tests --coverage --coverage-fail 90
  ocsdev run-tests -m TestConfig            # go test -run filter
  ocsdev run-tests -t ./internal/config     # specific packages
  ocsdev run-tests --parallel auto -v       # one worker per CPU, verbose
  ocsdev run-tests --go-test-args=-count=1  # raw go test arguments
  ocsdev run-tests --setup                  # install test deps and exit
  ocsdev run-tests --check                  # report test file structure`,
	RunE: runRunTests,
}

func init() {
	rootCmd.AddCommand(runTestsCmd)

	// Mode selection
	runTestsCmd.Flags().BoolVar(&runTestsSetup, "setup", false, "Install test dependencies and dev tools, then exit")
	runTestsCmd.Flags().BoolVar(&runTestsCheck, "check", false, "Report the test file structure, then exit")
	runTestsCmd.Flags().BoolVar(&runTestsLint, "lint", false, "Vet the packages under test, then exit")
	runTestsCmd.Flags().BoolVar(&runTestsQuick, "quick", false, "Run the short unit-test subset")
	runTestsCmd.Flags().BoolVar(&runTestsIntegration, "integration", false, "Run integration-tagged tests only")
	runTestsCmd.Flags().BoolVar(&runTestsCoverage, "coverage", false, "Collect coverage and render reports")

	// Coverage handling
	runTestsCmd.Flags().IntVar(&runTestsCoverFail, "coverage-fail", 0, "Minimum total coverage percent (default from config)")
	runTestsCmd.Flags().BoolVar(&runTestsCopy, "copy", false, "Copy the HTML report path to the clipboard")

	// Run shaping
	runTestsCmd.Flags().StringVar(&runTestsParallel, "parallel", "", "Parallel test workers: a count or 'auto'")
	// A bare --parallel means automatic worker detection.
	runTestsCmd.Flags().Lookup("parallel").NoOptDefVal = "auto"
	runTestsCmd.Flags().BoolVarP(&runTestsVerbose, "verbose", "v", false, "Verbose test output")
	runTestsCmd.Flags().StringVarP(&runTestsRunFilter, "run", "m", "", "Run only tests matching this expression")
	runTestsCmd.Flags().StringSliceVarP(&runTestsTests, "tests", "t", nil, "Specific packages to test instead of the default set")
	runTestsCmd.Flags().StringArrayVar(&runTestsGoTestArgs, "go-test-args", nil, "Extra arguments appended to go test unmodified")
}

func runRunTests(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}

	opts := testrunner.Options{
		Setup:          runTestsSetup,
		Check:          runTestsCheck,
		Lint:           runTestsLint,
		Quick:          runTestsQuick,
		Integration:    runTestsIntegration,
		Coverage:       runTestsCoverage,
		CoverageFail:   runTestsCoverFail,
		Parallel:       runTestsParallel,
		Verbose:        runTestsVerbose,
		RunFilter:      runTestsRunFilter,
		Tests:          runTestsTests,
		Passthrough:    append(runTestsGoTestArgs, args...),
		CopyReportPath: runTestsCopy,
	}

	runner := testrunner.New(env.cfg, env.dir, env.console)
	if err := runner.Run(cmd.Context(), opts); err != nil {
		env.console.Error("%v", err)
		// The go test exit code is the process exit code; cobra's
		// generic error exit would collapse it to 1.
		os.Exit(executor.ExitCode(err))
	}
	return nil
}
