package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ocsdev",
		Long:  `All software has versions. This is ocsdev's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ocsdev version %s\n", rootCmd.Version)
		},
	}
}
