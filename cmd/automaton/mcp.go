package main

import (
	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/cli"
	"github.com/aretw0/automaton/internal/config"
	"github.com/aretw0/automaton/pkg/adapters/mcp"
	"github.com/aretw0/automaton/pkg/adapters/memory"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp <file>",
	Short: "Serve the automaton as an MCP server over stdio",
	Long: `Exposes the automaton to MCP clients with the validate_input,
describe_automaton and get_run tools.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, opts, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		engine, err := cli.NewEngine(args[0], opts, logger, automaton.WithRunStore(memory.NewStore()))
		if err != nil {
			return err
		}
		return mcp.NewServer(engine, logger).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("alphabet", config.DefaultAlphabet, "Allowed input symbols (empty to accept any)")
}
