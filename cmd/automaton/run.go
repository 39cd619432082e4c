package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/cli"
	"github.com/aretw0/automaton/internal/config"
	"github.com/aretw0/automaton/internal/presentation/tui"
	"github.com/aretw0/automaton/pkg/adapters/file"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file> <input>...",
	Short: "Validate input strings against an automaton",
	Long: `Simulates every input and prints whether it is accepted.
Inputs are restricted to the configured alphabet (binary by default).`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, opts, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		var extra []automaton.Option
		runsDir := cfg.RunsDir
		if cmd.Flags().Changed("runs-dir") {
			runsDir, _ = cmd.Flags().GetString("runs-dir")
		}
		if runsDir != "" {
			extra = append(extra, automaton.WithRunStore(file.NewStore(runsDir)))
		}
		engine, err := cli.NewEngine(args[0], opts, logger, extra...)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		trace, _ := cmd.Flags().GetBool("trace")
		out := cmd.OutOrStdout()

		var runs []*domain.Run
		for _, input := range args[1:] {
			run, err := engine.Validate(cmd.Context(), input)
			if err != nil {
				return err
			}
			if asJSON {
				runs = append(runs, run)
				continue
			}

			fmt.Fprintf(out, "%q\t", input)
			tui.PrintVerdict(out, run.Result)
			if trace {
				for _, step := range run.Steps {
					fmt.Fprintf(out, "  %s --%s--> %s\n", step.From, step.Symbol, step.To)
				}
			}
		}

		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("alphabet", config.DefaultAlphabet, "Allowed input symbols (empty to accept any)")
	runCmd.Flags().Bool("trace", false, "Print the transitions taken")
	runCmd.Flags().Bool("json", false, "Print runs as JSON")
	runCmd.Flags().String("runs-dir", "", "Persist runs as JSON files in this directory")
}
