package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/automaton/internal/cli"
	"github.com/aretw0/automaton/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automaton",
	Short: "Automaton loads, checks and simulates deterministic finite automata",
	Long: `Automaton reads a DFA definition (line format, YAML or JSON), validates that it
is well-formed and deterministic, and decides whether input strings are accepted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// settings resolves the configuration file, the shared CLI options and the
// logger for a command.
func settings(cmd *cobra.Command) (config.Config, cli.Options, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, cli.Options{}, nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logger, err := cli.NewLogger(debug, cfg.LogLevel)
	if err != nil {
		return cfg, cli.Options{}, nil, err
	}

	opts := cli.OptionsFromConfig(cfg, debug)
	if f := cmd.Flags().Lookup("alphabet"); f != nil && f.Changed {
		opts.Alphabet = f.Value.String()
	}
	return cfg, opts, logger, nil
}
