package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/annogen/internal/config"
	"github.com/mouse-blink/annogen/internal/logging"
)

// cfg is resolved once per invocation, before any command runs.
var cfg config.Config

var closeLog = func() {}

// loadConfig merges flags, ANNOGEN_* environment variables and the config
// file, validates the result and installs the default logger.
func loadConfig(cmd *cobra.Command) error {
	configFile, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return err
	}

	v, err := config.New(configFile)
	if err != nil {
		return err
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	resolved := config.FromViper(v)
	if err := resolved.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logging.ParseLevel(resolved.LogLevel)
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.Setup(cmd.ErrOrStderr(), resolved.LogFile, level)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	closeLog()
	closeLog = cleanup
	cfg = resolved

	slog.SetDefault(logger)
	slog.Debug("configuration loaded", slog.String("config", v.ConfigFileUsed()), slog.Int("parallel", cfg.Parallel))

	return nil
}
