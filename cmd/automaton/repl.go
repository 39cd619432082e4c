package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/automaton/internal/cli"
	"github.com/aretw0/automaton/internal/config"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive menu: load, show and validate",
	Long: `Starts the interactive menu loop. Prompts are only shown when stdin is a
terminal, so the menu can also be scripted through a pipe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, opts, logger, err := settings(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = cli.NewREPL(os.Stdin, cmd.OutOrStdout(), opts, logger).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().String("alphabet", config.DefaultAlphabet, "Allowed input symbols (empty to accept any)")
}
