package cmd

import (
	"github.com/spf13/cobra"
)

var testQuick bool

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the test suite",
	Long: `Test runs the full test suite by re-executing this binary's
run-tests subcommand as a child process. Any arguments after -- are
passed through to run-tests verbatim:

  ocsdev test                     # full suite
  ocsdev test --quick             # short tests only
  ocsdev test -- --coverage       # with coverage report

The command exits non-zero when the suite fails.`,
	RunE: runTestStep,
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.Flags().BoolVar(&testQuick, "quick", false, "Run the short unit-test subset only")
}

func runTestStep(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}
	env.console.Header("Testing %s", env.cfg.Build.Binary)
	if testQuick {
		args = append([]string{"--quick"}, args...)
	}
	return env.orc.Test(cmd.Context(), args...)
}
