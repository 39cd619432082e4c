package main

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/automaton/internal/cli"
	"github.com/aretw0/automaton/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the structure of an automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, opts, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		engine, err := cli.NewEngine(args[0], opts, logger)
		if err != nil {
			return err
		}

		pretty, _ := cmd.Flags().GetBool("pretty")
		if !pretty {
			fmt.Fprint(cmd.OutOrStdout(), engine.Render())
			return nil
		}

		render := tui.NewRenderer()
		out, err := render(tui.Markdown(filepath.Base(args[0]), engine.Automaton()))
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("pretty", false, "Render as a styled markdown table")
}
