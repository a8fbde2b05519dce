package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/senna-lang/schedtrack/internal/logging"
	"github.com/senna-lang/schedtrack/internal/project"
	"github.com/senna-lang/schedtrack/internal/task"
	"github.com/senna-lang/schedtrack/pkg/config"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	ConfigPath string
	Today      string
	LogLevel   string
	NoPrompt   bool
}

var globalOpts globalOptions

// settings is the effective configuration for one invocation after the
// config file and flags have been merged.
type settings struct {
	cfg        config.Config
	configPath string // empty when no config file was found
	today      task.Date
	quiet      bool
	logger     *log.Logger
}

// resolveConfigPath returns the explicit --config path, or the nearest
// .schedtrack.yaml above the working directory, or "" if there is none.
func resolveConfigPath(opts globalOptions) (string, error) {
	if opts.ConfigPath != "" {
		return opts.ConfigPath, nil
	}
	root, err := project.FindRoot()
	if err != nil {
		if errors.Is(err, project.ErrNoConfig) {
			return "", nil
		}
		return "", err
	}
	return config.ConfigPath(root), nil
}

// loadSettings reads the config file (if any) and applies flag overrides.
// Log output is written to logOut.
func loadSettings(opts globalOptions, logOut io.Writer) (*settings, error) {
	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, fmt.Errorf("locate config: %w", err)
	}

	cfg := config.Default()
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	today := task.NewDate(cfg.ReferenceDate.Day, cfg.ReferenceDate.Month, cfg.ReferenceDate.Year)
	if opts.Today != "" {
		today, err = task.ParseDate(opts.Today)
		if err != nil {
			return nil, fmt.Errorf("--today: %w", err)
		}
	}
	if !today.Valid() {
		return nil, fmt.Errorf("invalid reference date %s", today)
	}

	logOpts := logging.DefaultOptions()
	logOpts.Level = cfg.Log.Level
	if opts.LogLevel != "" {
		logOpts.Level = opts.LogLevel
	}
	logger, err := logging.New(logOut, logOpts)
	if err != nil {
		return nil, err
	}

	logger.Debug("settings loaded", "config", path, "today", today.String())

	return &settings{
		cfg:        cfg,
		configPath: path,
		today:      today,
		quiet:      opts.NoPrompt || cfg.Menu.Quiet,
		logger:     logger,
	}, nil
}
