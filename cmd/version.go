package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/senna-lang/schedtrack/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of sched",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
