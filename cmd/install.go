package cmd

import (
	"github.com/spf13/cobra"
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install module dependencies and dev tools",
	Long: `Install checks that the go toolchain is available, downloads and
verifies the module dependencies, and installs the dev tools listed in
the configuration (tools: entries in .ocsdev/config.yaml).

A missing go toolchain is an error with an install hint; an empty tool
list is skipped with a warning.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}
	env.console.Header("Installing %s dependencies", env.cfg.Build.Binary)
	return env.orc.Install(cmd.Context())
}
