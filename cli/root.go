package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvseq/internal/config"
	"github.com/katalvlaran/lvseq/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand once the root
// PersistentPreRunE has run.
type app struct {
	cfg *config.Config
	log *zap.Logger

	envDir    string
	logLevel  string
	logFormat string
}

// NewRootCmd builds a fresh command tree. Each call is independent, which
// keeps tests free of shared flag state.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lvseq",
		Short: "Sequence distance, alignment and reconciliation",
		Long: `lvseq compares sequences from the command line: edit distances and
similarity scores between strings, fuzzy reconciliation of two line-based
files, and dynamic time warping of numeric series.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	root.PersistentFlags().StringVar(&a.envDir, "env-dir", ".", "Directory holding an optional .env file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format (console, json)")

	root.AddCommand(
		newDistanceCmd(a),
		newSimilarityCmd(a),
		newReconcileCmd(a),
		newAlignCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.envDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	a.cfg = cfg
	a.log = l.With(zap.String("command", cmd.Name()))

	return nil
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// config may be what failed, so log with fixed settings
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
