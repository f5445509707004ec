package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gosplice/internal/config"
	"gosplice/internal/fsx"
	"gosplice/internal/logging"
	"gosplice/internal/splice"
)

var (
	cfgFile    string
	logLevel   string
	bufferSize config.ByteSize

	// Loaded by setup before any subcommand runs.
	cfg    = config.Default()
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gosplice",
	Short: "Replace byte ranges of files in place using bounded memory",
	Long: `gosplice edits files in place: it replaces a byte range with new bytes,
shifting the rest of the file forward or backward through a fixed-size buffer
so even very large files are edited without holding them in memory.

It also copies, moves and removes files and directories, optionally showing
progress and verifying the result.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// setup loads the configuration, applies flag overrides and installs the
// logger in the packages that log.
func setup(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultFile
	}
	c, err := config.Load(path)
	if err != nil {
		return errors.Trace(err)
	}
	if cmd.Flags().Changed("buffer-size") {
		c.BufferSize = bufferSize
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevel
	}
	if err := c.Validate(); err != nil {
		return errors.Trace(err)
	}

	l, err := logging.New(c.LogLevel)
	if err != nil {
		return errors.Trace(err)
	}
	cfg, logger = c, l
	splice.SetLogger(l)
	fsx.SetLogger(l)

	logger.Debug("configuration loaded",
		zap.String("file", path),
		zap.Int64("buffer_size", int64(c.BufferSize)),
		zap.String("log_level", c.LogLevel))
	return nil
}

// commandContext returns the context the command was executed with.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	bufferSize = config.DefaultBufferSize
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Var(&bufferSize, "buffer-size", "bytes held in memory at once, e.g. 64000 or 4MiB")
}
