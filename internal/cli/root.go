// Package cli implements the tabula command line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/claryai/tabula/internal/config"
	"github.com/claryai/tabula/internal/version"
)

// app carries state shared by every subcommand. cfg and logger are set
// before any subcommand runs.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tabula",
		Short: "Extract tables from text and HTML blocks",
		Long: `tabula turns a block of text that holds a table (markdown, ASCII grid,
invoice ledger, space-aligned columns or an HTML fragment) into JSON with
one object per row.

Blocks that hold no table come back with an "error" field; treat them as
plain text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.Version = version.Version
	root.SetVersionTemplate(fmt.Sprintf("tabula %s\n", version.String()))

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvPath+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(
		newParseCommand(a),
		newClassifyCommand(a),
		newBatchCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded",
		"config", a.configPath,
		"min_column_gap", cfg.Parser.MinColumnGap,
		"concurrency", cfg.Batch.Concurrency)
	return nil
}

// Execute runs the command line tool and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
