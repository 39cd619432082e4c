package main

import (
	"context"
	"fmt"

	"github.com/aretw0/automaton/pkg/adapters/file"
	"github.com/aretw0/automaton/pkg/loader"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a definition for structural errors",
	Long: `Loads the definition and reports every diagnostic: skipped records,
unknown states, multiple or missing initial states and nondeterminism.
Exits with status 1 when the automaton is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, opts, logger, err := settings(cmd)
		if err != nil {
			return err
		}

		loaderOpts := []loader.Option{loader.WithLogger(logger)}
		if opts.Deferred {
			loaderOpts = append(loaderOpts, loader.WithDeferredResolution())
		}
		a := loader.New(loaderOpts...).LoadSource(context.Background(), file.NewSource(args[0]))

		out := cmd.OutOrStdout()
		for _, d := range a.Diagnostics() {
			fmt.Fprintf(out, "%-10s %v\n", d.Kind, d)
		}
		if !a.Valid() {
			fmt.Fprintln(out, "Automaton is invalid ❌")
			return fmt.Errorf("check failed: %w", a.Err())
		}
		fmt.Fprintf(out, "Automaton is valid! ✅ (%d states, alphabet %q)\n", a.Len(), string(a.Alphabet()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
