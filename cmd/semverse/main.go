// Package main provides the semverse binary entry point.
// Semverse builds a registry of reference semantic universes, stratifies it
// by entropy and checks every universe against the category, functor and
// gluing laws.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semverse/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semverse"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Semantic universe registry",
		Long: `Semverse builds a registry of reference semantic universes.

It provides:
- Entropy stratification of the registry
- Conformance checks for the category, functor and gluing laws
- RDF export of registry reports (Turtle, N-Triples, JSON-LD)`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		stratifyCmd(opts),
		validateCmd(opts),
		exportCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

// setup loads configuration and builds the application for one command.
func setup(cmd *cobra.Command, opts *options) (*App, error) {
	bootstrap := newLogger(cmd.ErrOrStderr(), opts.logLevel)

	cfg, err := config.NewLoader(bootstrap).Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	slog.SetDefault(logger)

	return NewApp(cfg, logger, nil), nil
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
