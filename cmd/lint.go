package cmd

import (
	"github.com/spf13/cobra"
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run linters and the format check",
	Long: `Lint runs the configured linter (golangci-lint by default) and a
gofmt check over the project. A missing linter binary downgrades that
half to a warning with an install hint; lint findings and unformatted
files fail the command.`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}
	env.console.Header("Linting %s", env.cfg.Build.Binary)
	return env.orc.Lint(cmd.Context())
}
