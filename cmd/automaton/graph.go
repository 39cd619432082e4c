package main

import (
	"fmt"

	"github.com/aretw0/automaton/internal/cli"
	"github.com/aretw0/automaton/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph LR) of the automaton.
With --input, the path taken by that input is highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, opts, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		engine, err := cli.NewEngine(args[0], opts, logger)
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if cmd.Flags().Changed("input") {
			input, _ := cmd.Flags().GetString("input")
			overlay = graph.OverlayFromResult(engine.Automaton().Run(input))
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(engine.Automaton(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("input", "", "Highlight the path taken by this input")
}
