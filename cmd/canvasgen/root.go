package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/canvasgen/internal/config"
	"github.com/alexisbeaulieu97/canvasgen/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "canvasgen",
		Short:         "canvasgen builds styled HTML components for course pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, flags, &editorOptions{})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a canvasgen config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to a rotating file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newEditorCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config file, if any, and applies flag overrides.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", f.configPath, err, "Fix the config file or run without --config.")
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, newCommandError("load configuration", "applying flags", err, "Check --log-level and the config values.")
	}
	return cfg, nil
}

// newLogger builds the process logger. When the destination is the
// terminal, output is human readable.
func newLogger(cfg *config.Config, humanReadable bool) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: humanReadable && cfg.Log.File == "",
		File:          cfg.Log.File,
	})
	if err != nil {
		return nil, newCommandError("create logger", cfg.Log.File, err, "Check --log-file points to a writable location.")
	}
	return log, nil
}
