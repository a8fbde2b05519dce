package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/senna-lang/schedtrack/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect the .schedtrack.yaml config file",
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// --- sched config init -------------------------------------------------------

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default .schedtrack.yaml to the current directory, or to the
path given with --config. An existing file is left alone unless --force is
passed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := globalOpts.ConfigPath
		if path == "" {
			path = config.ConfigPath(".")
		}
		return runConfigInit(cmd.OutOrStdout(), path, force)
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

func runConfigInit(out io.Writer, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(out, "✓ Wrote %s\n", path)
	return nil
}

// --- sched config show -------------------------------------------------------

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration sched would use, after defaults and flag
overrides have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd.OutOrStdout(), cmd.ErrOrStderr(), globalOpts)
	},
}

func runConfigShow(out, errOut io.Writer, opts globalOptions) error {
	st, err := loadSettings(opts, errOut)
	if err != nil {
		return err
	}

	cfg := st.cfg
	cfg.ReferenceDate = config.DateConfig{Day: st.today.Day, Month: st.today.Month, Year: st.today.Year}
	cfg.Log.Level = st.logger.GetLevel().String()
	cfg.Menu.Quiet = st.quiet

	if st.configPath == "" {
		fmt.Fprintln(out, "# no config file found; showing defaults")
	} else {
		fmt.Fprintf(out, "# %s\n", st.configPath)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
