package cmd

import (
	"github.com/spf13/cobra"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build artifacts and caches",
	Long: `Clean removes generated build artifacts: compiled binaries,
coverage reports, release snapshots, and tool caches. Patterns come
from the configuration; the defaults cover bin/, dist/, coverage
files, and per-package test binaries.

Running clean twice is safe: artifacts that are already gone are
skipped, not errors.`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}
	env.console.Header("Cleaning %s", env.cfg.Build.Binary)
	return env.orc.Clean(cmd.Context())
}
