package cmd

import (
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build distributable binaries",
	Long: `Build cleans previous artifacts and then produces a distribution:
a goreleaser snapshot build into dist/ when goreleaser is installed,
otherwise a plain go build into the configured output directory.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}
	env.console.Header("Building %s", env.cfg.Build.Binary)
	return env.orc.Build(cmd.Context())
}
