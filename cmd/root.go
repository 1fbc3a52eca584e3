package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ocsdev",
	Short: "Build automation for the OpenCodeSpace project",
	Long: `ocsdev wraps the project's build chores behind one binary:
installing dependencies, running the test suite, linting, cleaning
artifacts, and producing release builds, individually or as one
pipeline.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a failed build step or a failing test run)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "ocsdev version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
