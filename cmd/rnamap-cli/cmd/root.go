package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"rnamap/internal/adapters/filesystem"
	"rnamap/internal/adapters/sqlite"
	"rnamap/internal/application"
	"rnamap/internal/config"
	"rnamap/internal/ports"
)

var (
	configPath   string
	formatFlag   string
	logLevelFlag string
	noHistory    bool

	cfg     *config.Config
	logger  *slog.Logger
	files   ports.FileStore
	history *sqlite.History
)

var rootCmd = &cobra.Command{
	Use:   "rnamap-cli",
	Short: "Map RNA secondary-structure nodes between a template and a target",
	Long: `rnamap-cli reads an Infernal alignment (header, sequence, header,
structure) and maps every node of the template structure onto the
target structure: unpaired columns and base pairs, with deletions and
insertions marked by 0.

The mapping is written as a DISTANCE line followed by one
"<template node> <target node>" line per entry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevelFlag
		}
		if cmd.Flags().Changed("format") {
			loaded.Format = formatFlag
		}
		if noHistory {
			disabled := false
			loaded.History.Enabled = &disabled
		}
		if _, err := config.ParseLevel(loaded.LogLevel); err != nil {
			return &application.ValidationError{Field: "log-level", Message: err.Error()}
		}

		cfg = loaded
		logger = cfg.NewLogger(os.Stderr)
		files = filesystem.NewStore()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if history != nil {
			return history.Close()
		}
		return nil
	},
}

// Execute runs the root command. Errors are logged and the process exits
// with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l := logger
		if l == nil {
			l = slog.New(slog.NewTextHandler(os.Stderr, nil))
		}
		l.Error("rnamap-cli failed", "error", err)
		if history != nil {
			history.Close()
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.Path(), "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record conversions")
}

// outputFormat returns the configured output format
func outputFormat() (application.OutputFormat, error) {
	return application.ParseOutputFormat("format", cfg.Format)
}

// openHistory opens the history store for commands that record runs. It
// returns nil when history is disabled or cannot be opened; recording is
// best effort and never stops a conversion.
func openHistory() ports.HistoryStore {
	if !cfg.HistoryEnabled() {
		return nil
	}
	h, err := historyStore()
	if err != nil {
		logger.Warn("history unavailable, conversions will not be recorded", "error", err)
		return nil
	}
	return h
}

// requireHistory opens the history store for commands that cannot work
// without it
func requireHistory() (ports.HistoryStore, error) {
	if !cfg.HistoryEnabled() {
		return nil, &application.ValidationError{Field: "history", Message: "history is disabled"}
	}
	h, err := historyStore()
	if err != nil {
		return nil, err
	}
	return h, nil
}

func historyStore() (*sqlite.History, error) {
	if history == nil {
		h := sqlite.NewHistory()
		if err := h.Open(cfg.History.Path); err != nil {
			return nil, err
		}
		history = h
	}
	return history, nil
}
