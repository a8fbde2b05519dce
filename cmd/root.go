// Package cmd implements the sched CLI commands using the cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sched",
	Short: "Console schedule tracker",
	Long: `sched keeps a schedule of tasks indexed by calendar date for the length
of one session. Add tasks with a priority and a recurrence label, list
everything ranked by priority, or list what is coming up after the reference
date.

Running sched without a subcommand starts the interactive menu. Nothing is
saved when the session ends.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&globalOpts.ConfigPath, "config", "c", "", "Path to config file (default: nearest .schedtrack.yaml)")
	pf.StringVar(&globalOpts.Today, "today", "", "Reference date for upcoming tasks, dd/mm/yyyy (overrides config)")
	pf.StringVar(&globalOpts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.BoolVar(&globalOpts.NoPrompt, "no-prompt", false, "Do not print the menu or input prompts")
}
