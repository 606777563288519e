// Package cli provides the command-line interface for input-collector.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/input-collector/internal/config"
	"github.com/ytget/input-collector/internal/logging"
)

// Version is set by the main package at startup
var Version = "dev"

// rootOptions holds the global flags and what PersistentPreRunE derives from them
type rootOptions struct {
	configFile string
	verbose    bool

	cfg config.FileConfig
	log zerolog.Logger
}

// NewRootCmd creates the root command for CLI mode.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{log: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "input-collector",
		Short: "Collect input files and copy them into a working folder",
		Long: `input-collector gathers input files into a list, keeping file names unique,
reports their count and total size, and copies them into a working folder.

Folders are expanded recursively after confirmation. When a file name is
already listed you are asked whether to replace the listed file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Configuration file path (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.Version = Version

	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))

	return rootCmd
}

// init loads the config file and sets up logging
func (o *rootOptions) init(cmd *cobra.Command) error {
	path := o.configFile
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	} else if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o.cfg = cfg

	level := logging.ParseLevel(cfg.LogLevel)
	if o.verbose {
		level = zerolog.DebugLevel
	}
	logging.SetGlobalLevel(level)

	o.log = logging.NewWithMode(cmd.ErrOrStderr(), logging.ModeCLI)
	o.log.Debug().Str("config", path).Msg("configuration loaded")
	return nil
}
