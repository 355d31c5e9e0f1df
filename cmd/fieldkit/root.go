package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// config holds environment-driven defaults (FIELDKIT_PRETTY, FIELDKIT_VERBOSE).
// Flags override the environment.
type config struct {
	Pretty  bool `default:"false"`
	Verbose bool `default:"false"`
}

var (
	cfg    config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fieldkit",
	Short: "Validate documents against declarative schema definitions",
	Long: `fieldkit loads a YAML or JSON schema definition, validates JSON
documents against it, and emits the equivalent JSON Schema or OpenAPI
description for external tooling.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := envconfig.Process("fieldkit", &cfg); err != nil {
			return fmt.Errorf("read environment: %w", err)
		}
		if cmd.Flags().Changed("pretty") {
			cfg.Pretty, _ = cmd.Flags().GetBool("pretty")
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
		}
		logger = newLogger(cfg.Verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("pretty", false, "indent JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func newLogger(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	l, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
